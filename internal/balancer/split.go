package balancer

import (
	"fmt"
	"sort"

	"github.com/dom/team-balancer/internal/domain"
)

// Split partitions players into two squads greedily, highest rating first,
// always assigning to the squad with the lower running sum (team 1 on ties).
// For an odd pool the median-ranked player is held out and appended to the
// weaker squad afterwards as the substitute. Split is deterministic for a
// given input order and never modifies players.
func Split(players []domain.Player) (*domain.TeamPair, error) {
	if len(players) < 2 {
		return nil, fmt.Errorf("split %d players: %w", len(players), domain.ErrInsufficientPlayers)
	}

	working := sortedByRating(players)

	var substitute *domain.Player
	if len(working)%2 == 1 {
		mid := len(working) / 2
		sub := working[mid]
		substitute = &sub
		working = append(working[:mid], working[mid+1:]...)
	}

	pair := &domain.TeamPair{
		Team1: make(domain.Squad, 0, len(players)/2+1),
		Team2: make(domain.Squad, 0, len(players)/2+1),
	}
	team1Sum, team2Sum := 0, 0
	for _, p := range working {
		if team1Sum <= team2Sum {
			pair.Team1 = append(pair.Team1, p)
			team1Sum += p.Rating
		} else {
			pair.Team2 = append(pair.Team2, p)
			team2Sum += p.Rating
		}
	}

	if substitute != nil {
		side := domain.TeamOne
		if team1Sum <= team2Sum {
			pair.Team1 = append(pair.Team1, *substitute)
			team1Sum += substitute.Rating
		} else {
			side = domain.TeamTwo
			pair.Team2 = append(pair.Team2, *substitute)
			team2Sum += substitute.Rating
		}
		pair.SubstituteInfo = &domain.SubstitutePair{
			Substitute:     *substitute,
			RotationPlayer: rotationPartner(pair.Squad(side), *substitute),
			TeamWithSub:    side,
		}
	}

	pair.RatingDifference = abs(team1Sum - team2Sum)
	return pair, nil
}

// sortedByRating returns a copy of players sorted by rating, highest first.
// Equal ratings keep their input order.
func sortedByRating(players []domain.Player) []domain.Player {
	sorted := make([]domain.Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})
	return sorted
}

// rotationPartner finds the squad-mate whose rating is closest to the
// substitute's. The first one found wins ties.
func rotationPartner(squad domain.Squad, substitute domain.Player) *domain.Player {
	var partner *domain.Player
	bestDistance := 0
	for i := range squad {
		if squad[i].ID == substitute.ID {
			continue
		}
		distance := abs(squad[i].Rating - substitute.Rating)
		if partner == nil || distance < bestDistance {
			p := squad[i]
			partner = &p
			bestDistance = distance
		}
	}
	return partner
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
