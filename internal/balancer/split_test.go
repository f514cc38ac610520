package balancer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dom/team-balancer/internal/balancer"
	"github.com/dom/team-balancer/internal/domain"
	"github.com/dom/team-balancer/internal/testutil"
)

func TestSplit_FourPlayers(t *testing.T) {
	players := testutil.NewPool(90, 80, 70, 60)

	pair, err := balancer.Split(players)
	require.NoError(t, err)

	// 90 -> team1, 80 -> team2, 70 -> team2 (80 < 90), 60 -> team1 (90 < 150)
	assert.Equal(t, []int{1, 4}, pair.Team1.IDs())
	assert.Equal(t, []int{2, 3}, pair.Team2.IDs())
	assert.Equal(t, 0, pair.RatingDifference)
	assert.Nil(t, pair.SubstituteInfo)
}

func TestSplit_OddPoolHoldsOutMedian(t *testing.T) {
	players := testutil.NewPool(100, 80, 60, 40, 20)

	pair, err := balancer.Split(players)
	require.NoError(t, err)

	// 60 is held out; 100,20 and 80,40 tie at 120 so the substitute joins team1.
	assert.Equal(t, []int{100, 20, 60}, testutil.RatingsOf(pair.Team1))
	assert.Equal(t, []int{80, 40}, testutil.RatingsOf(pair.Team2))
	assert.Equal(t, 60, pair.RatingDifference)

	require.NotNil(t, pair.SubstituteInfo)
	assert.Equal(t, 3, pair.SubstituteInfo.Substitute.ID)
	assert.Equal(t, domain.TeamOne, pair.SubstituteInfo.TeamWithSub)

	// 100 and 20 are both 40 away from 60; the first squad-mate wins.
	require.NotNil(t, pair.SubstituteInfo.RotationPlayer)
	assert.Equal(t, 1, pair.SubstituteInfo.RotationPlayer.ID)
}

func TestSplit_SubstituteJoinsWeakerSquad(t *testing.T) {
	players := testutil.NewPool(50, 45, 40, 30, 10)

	pair, err := balancer.Split(players)
	require.NoError(t, err)

	// 40 is held out; 50 -> team1, 45 -> team2, 30 -> team2 (75), 10 -> team1 (60).
	require.NotNil(t, pair.SubstituteInfo)
	assert.Equal(t, 40, pair.SubstituteInfo.Substitute.Rating)
	assert.Equal(t, domain.TeamOne, pair.SubstituteInfo.TeamWithSub)
	assert.Equal(t, []int{50, 10, 40}, testutil.RatingsOf(pair.Team1))
	assert.Equal(t, 25, pair.RatingDifference)
	assert.Equal(t, 50, pair.SubstituteInfo.RotationPlayer.Rating)
}

func TestSplit_SubstituteOnTeamTwo(t *testing.T) {
	players := testutil.NewPool(90, 50, 40, 20, 10)

	pair, err := balancer.Split(players)
	require.NoError(t, err)

	// 40 is held out; 90 -> team1, 50 -> team2, 20 -> team2, 10 -> team2 (80 < 90).
	assert.Equal(t, []int{90}, testutil.RatingsOf(pair.Team1))
	assert.Equal(t, []int{50, 20, 10, 40}, testutil.RatingsOf(pair.Team2))
	require.NotNil(t, pair.SubstituteInfo)
	assert.Equal(t, domain.TeamTwo, pair.SubstituteInfo.TeamWithSub)
	assert.Equal(t, 50, pair.SubstituteInfo.RotationPlayer.Rating)
	assert.Equal(t, 30, pair.RatingDifference)
}

func TestSplit_InsufficientPlayers(t *testing.T) {
	tests := []struct {
		name    string
		players []domain.Player
	}{
		{"nil", nil},
		{"empty", []domain.Player{}},
		{"one player", testutil.NewPool(50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, err := balancer.Split(tt.players)
			assert.ErrorIs(t, err, domain.ErrInsufficientPlayers)
			assert.Nil(t, pair)
		})
	}
}

func TestSplit_PartitionAndSubstituteInvariants(t *testing.T) {
	for n := 2; n <= 21; n++ {
		players := testutil.NewSpreadPool(n)

		pair, err := balancer.Split(players)
		require.NoError(t, err, "n=%d", n)

		testutil.AssertPartition(t, players, pair)
		testutil.AssertRatingDifference(t, pair)
		testutil.AssertSubstitute(t, n, pair)
	}
}

func TestSplit_RandomOddPools(t *testing.T) {
	src := balancer.NewSource(2024)

	for round := 0; round < 500; round++ {
		n := 3 + 2*src.Intn(8)
		ratings := make([]int, n)
		for i := range ratings {
			ratings[i] = 1 + src.Intn(100)
		}
		players := testutil.NewPool(ratings...)

		pair, err := balancer.Split(players)
		require.NoError(t, err, "ratings=%v", ratings)
		testutil.AssertPartition(t, players, pair)
		testutil.AssertRatingDifference(t, pair)
		testutil.AssertSubstitute(t, n, pair)

		mixed, err := balancer.RandomizedBestOf(players, 5, 5, src)
		require.NoError(t, err, "ratings=%v", ratings)
		testutil.AssertPartition(t, players, mixed)
		testutil.AssertSubstitute(t, n, mixed)
	}
}

func TestSplit_Deterministic(t *testing.T) {
	players := testutil.NewPool(55, 55, 70, 31, 55, 90, 12)

	first, err := balancer.Split(players)
	require.NoError(t, err)
	second, err := balancer.Split(players)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSplit_DoesNotModifyInput(t *testing.T) {
	players := testutil.NewPool(10, 90, 50, 70, 30)
	original := make([]domain.Player, len(players))
	copy(original, players)

	_, err := balancer.Split(players)
	require.NoError(t, err)

	assert.Equal(t, original, players)
}

func TestSplit_EqualRatingsKeepInputOrder(t *testing.T) {
	players := testutil.NewPool(50, 50, 50, 50)

	pair, err := balancer.Split(players)
	require.NoError(t, err)

	// 50 -> team1, 50 -> team2, tie -> team1, 50 -> team2
	assert.Equal(t, []int{1, 3}, pair.Team1.IDs())
	assert.Equal(t, []int{2, 4}, pair.Team2.IDs())
}

func TestSplit_TwoPlayers(t *testing.T) {
	players := testutil.NewPool(30, 70)

	pair, err := balancer.Split(players)
	require.NoError(t, err)

	assert.Equal(t, []int{2}, pair.Team1.IDs())
	assert.Equal(t, []int{1}, pair.Team2.IDs())
	assert.Equal(t, 40, pair.RatingDifference)
}
