package domain

import "errors"

// Balancing errors
var (
	ErrInsufficientPlayers = errors.New("not enough players to form teams")
)

// Roster validation errors
var (
	ErrInvalidRating          = errors.New("rating must be between 1 and 100")
	ErrDuplicatePlayer        = errors.New("player appears more than once in roster")
	ErrInvalidBalanceMode     = errors.New("invalid balance mode")
	ErrUnsupportedBalanceMode = errors.New("balance mode is not implemented")
)
