package domain

// MinRating and MaxRating bound a player rating.
const (
	MinRating = 1
	MaxRating = 100
)

// Player is a rated roster entry handed to the balancer
type Player struct {
	ID     int    `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Rating int    `json:"rating" yaml:"rating"`
}

// Validate checks that the rating lies within MinRating..MaxRating
func (p Player) Validate() error {
	if p.Rating < MinRating || p.Rating > MaxRating {
		return ErrInvalidRating
	}
	return nil
}

// Squad is one side of a generated match, in assignment order
type Squad []Player

// TotalRating returns the sum of the squad's ratings
func (s Squad) TotalRating() int {
	total := 0
	for _, p := range s {
		total += p.Rating
	}
	return total
}

// Contains reports whether a player with the given ID is in the squad
func (s Squad) Contains(id int) bool {
	for _, p := range s {
		if p.ID == id {
			return true
		}
	}
	return false
}

// IDs returns the player IDs in squad order
func (s Squad) IDs() []int {
	ids := make([]int, len(s))
	for i, p := range s {
		ids[i] = p.ID
	}
	return ids
}
