package testutil

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dom/team-balancer/internal/domain"
)

// AssertPartition verifies every input player lands in exactly one squad
func AssertPartition(t *testing.T, players []domain.Player, pair *domain.TeamPair) {
	t.Helper()
	require.NotNil(t, pair, "team pair is nil")

	inputIDs := lo.Map(players, func(p domain.Player, _ int) int { return p.ID })
	outputIDs := append(pair.Team1.IDs(), pair.Team2.IDs()...)

	assert.ElementsMatch(t, inputIDs, outputIDs, "squads do not partition the pool")
	for _, id := range pair.Team1.IDs() {
		assert.False(t, pair.Team2.Contains(id), "player %d is in both squads", id)
	}
}

// AssertRatingDifference verifies the recorded difference matches the squads
func AssertRatingDifference(t *testing.T, pair *domain.TeamPair) {
	t.Helper()

	diff := pair.Team1.TotalRating() - pair.Team2.TotalRating()
	if diff < 0 {
		diff = -diff
	}
	assert.Equal(t, diff, pair.RatingDifference, "rating difference does not match squad totals")
}

// AssertSubstitute verifies substitute info for a pool of the given size
func AssertSubstitute(t *testing.T, poolSize int, pair *domain.TeamPair) {
	t.Helper()

	if poolSize%2 == 0 {
		assert.Nil(t, pair.SubstituteInfo, "even pool should have no substitute")
		return
	}

	require.NotNil(t, pair.SubstituteInfo, "odd pool must have a substitute")
	info := pair.SubstituteInfo
	squad := pair.Squad(info.TeamWithSub)
	require.True(t, squad.Contains(info.Substitute.ID), "substitute is not in the recorded squad")
	require.Equal(t, info.Substitute.ID, squad[len(squad)-1].ID, "substitute must be the last player assigned")

	// The substitute joins the squad that was weaker before it arrived, team 1 on ties.
	team1Before, team2Before := pair.Team1.TotalRating(), pair.Team2.TotalRating()
	if info.TeamWithSub == domain.TeamOne {
		team1Before -= info.Substitute.Rating
		assert.LessOrEqual(t, team1Before, team2Before, "substitute joined the stronger squad")
	} else {
		team2Before -= info.Substitute.Rating
		assert.Greater(t, team1Before, team2Before, "substitute should have joined team 1")
	}

	mates := squad[:len(squad)-1]
	if info.RotationPlayer == nil {
		assert.Empty(t, mates, "substitute has teammates but no rotation player")
		return
	}
	require.True(t, mates.Contains(info.RotationPlayer.ID), "rotation player is not the substitute's teammate")

	// Closest rating wins, the earliest squad-mate on ties.
	want := mates[0]
	for _, p := range mates[1:] {
		if abs(p.Rating-info.Substitute.Rating) < abs(want.Rating-info.Substitute.Rating) {
			want = p
		}
	}
	assert.Equal(t, want, *info.RotationPlayer, "rotation player is not the closest-rated teammate")
}

// RatingsOf returns the ratings of a squad in order
func RatingsOf(squad domain.Squad) []int {
	return lo.Map(squad, func(p domain.Player, _ int) int { return p.Rating })
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
