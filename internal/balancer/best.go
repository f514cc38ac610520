package balancer

import (
	"github.com/dom/team-balancer/internal/domain"
)

// Default search budgets
const (
	DefaultIterations      = 100
	DefaultMixIterations   = 150
	DefaultRatingVariation = 5
	DefaultMatchIterations = 50
)

// BestOf seeds with Split on the input order, then reruns Split on
// iterations shuffled copies of the pool and keeps the first result with the
// lowest rating difference. Negative iterations are treated as zero.
func BestOf(players []domain.Player, iterations int, src Source) (*domain.TeamPair, error) {
	best, err := Split(players)
	if err != nil {
		return nil, err
	}
	src = sourceOrDefault(src)

	trial := make([]domain.Player, len(players))
	for i := 0; i < iterations && best.RatingDifference > 0; i++ {
		copy(trial, players)
		shuffle(src, trial)

		candidate, err := Split(trial)
		if err != nil {
			return nil, err
		}
		if candidate.RatingDifference < best.RatingDifference {
			best = candidate
		}
	}
	return best, nil
}

// RandomizedBestOf runs iterations+1 trials, each on a freshly shuffled copy
// of the pool whose ratings are offset by a uniform integer in
// [-ratingVariation, +ratingVariation] and clamped to 1..100. The winning
// TeamPair carries the perturbed ratings that produced it, so its squads are
// visibly varied rather than strictly optimal on real ratings.
func RandomizedBestOf(players []domain.Player, ratingVariation, iterations int, src Source) (*domain.TeamPair, error) {
	if len(players) < 2 {
		return Split(players)
	}
	if ratingVariation < 0 {
		ratingVariation = 0
	}
	src = sourceOrDefault(src)

	var best *domain.TeamPair
	for i := 0; i <= iterations || best == nil; i++ {
		trial := perturb(players, ratingVariation, src)
		shuffle(src, trial)

		candidate, err := Split(trial)
		if err != nil {
			return nil, err
		}
		if best == nil || candidate.RatingDifference < best.RatingDifference {
			best = candidate
		}
	}
	return best, nil
}

// perturb returns a copy of players with each rating offset by random noise.
func perturb(players []domain.Player, variation int, src Source) []domain.Player {
	out := make([]domain.Player, len(players))
	for i, p := range players {
		offset := 0
		if variation > 0 {
			offset = src.Intn(2*variation+1) - variation
		}
		p.Rating = clampRating(p.Rating + offset)
		out[i] = p
	}
	return out
}

func clampRating(rating int) int {
	switch {
	case rating < domain.MinRating:
		return domain.MinRating
	case rating > domain.MaxRating:
		return domain.MaxRating
	default:
		return rating
	}
}
