package domain

// BalanceMode selects how teams are generated for a roster
type BalanceMode string

const (
	BalanceModeBalanced BalanceMode = "balanced"
	BalanceModeRandom   BalanceMode = "random"
	// BalanceModeRatingSpread is accepted by configuration but has no algorithm behind it.
	BalanceModeRatingSpread BalanceMode = "rating-spread"
)

// AllBalanceModes lists every recognized mode
var AllBalanceModes = []BalanceMode{
	BalanceModeBalanced,
	BalanceModeRandom,
	BalanceModeRatingSpread,
}

// IsValid checks if the mode is a recognized value
func (m BalanceMode) IsValid() bool {
	for _, mode := range AllBalanceModes {
		if m == mode {
			return true
		}
	}
	return false
}

// IsImplemented reports whether a balancing algorithm exists for the mode
func (m BalanceMode) IsImplemented() bool {
	return m == BalanceModeBalanced || m == BalanceModeRandom
}

// String returns the mode name
func (m BalanceMode) String() string {
	return string(m)
}
