package testutil

import (
	"fmt"

	"github.com/dom/team-balancer/internal/domain"
)

// PlayerBuilder creates test players with a builder pattern
type PlayerBuilder struct {
	id     int
	name   string
	rating int
}

// NewPlayerBuilder creates a new PlayerBuilder with default values
func NewPlayerBuilder(id int) *PlayerBuilder {
	return &PlayerBuilder{
		id:     id,
		name:   fmt.Sprintf("player_%d", id),
		rating: 50,
	}
}

// WithName sets the display name
func (b *PlayerBuilder) WithName(name string) *PlayerBuilder {
	b.name = name
	return b
}

// WithRating sets the rating
func (b *PlayerBuilder) WithRating(rating int) *PlayerBuilder {
	b.rating = rating
	return b
}

// Build returns the player
func (b *PlayerBuilder) Build() domain.Player {
	return domain.Player{ID: b.id, Name: b.name, Rating: b.rating}
}

// NewPool creates one player per rating, with IDs starting at 1 and names A, B, C...
func NewPool(ratings ...int) []domain.Player {
	players := make([]domain.Player, len(ratings))
	for i, rating := range ratings {
		players[i] = NewPlayerBuilder(i + 1).
			WithName(poolName(i)).
			WithRating(rating).
			Build()
	}
	return players
}

// NewSpreadPool creates n players with ratings spread evenly between 10 and 100
func NewSpreadPool(n int) []domain.Player {
	ratings := make([]int, n)
	for i := range ratings {
		ratings[i] = 10 + (i*90)/max(n-1, 1)
	}
	return NewPool(ratings...)
}

func poolName(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return fmt.Sprintf("P%d", i+1)
}
