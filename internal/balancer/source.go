package balancer

import "math/rand"

// Source supplies the randomness used for shuffles and rating perturbation.
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewSource returns a deterministic Source for the given seed. The returned
// Source is not safe for concurrent use.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// globalSource delegates to the math/rand top-level functions, which are safe
// for concurrent use.
type globalSource struct{}

func (globalSource) Intn(n int) int                     { return rand.Intn(n) }
func (globalSource) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// DefaultSource is used when a nil Source is passed
var DefaultSource Source = globalSource{}

func sourceOrDefault(src Source) Source {
	if src == nil {
		return DefaultSource
	}
	return src
}

func shuffle[T any](src Source, items []T) {
	src.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
