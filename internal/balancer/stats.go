package balancer

import (
	"math"

	"github.com/samber/lo"

	"github.com/dom/team-balancer/internal/domain"
)

// Stats summarizes the ratings of a squad. An empty squad yields all zeros.
// AverageRating is rounded half up.
func Stats(players []domain.Player) domain.TeamStats {
	if len(players) == 0 {
		return domain.TeamStats{}
	}

	ratings := lo.Map(players, func(p domain.Player, _ int) int {
		return p.Rating
	})
	total := lo.Sum(ratings)

	return domain.TeamStats{
		TotalRating:   total,
		AverageRating: int(math.Floor(float64(total)/float64(len(ratings)) + 0.5)),
		PlayerCount:   len(ratings),
		MinRating:     lo.Min(ratings),
		MaxRating:     lo.Max(ratings),
	}
}
