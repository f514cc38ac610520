package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dom/team-balancer/internal/config"
	"github.com/dom/team-balancer/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"BALANCE_MODE", "BALANCE_ITERATIONS", "MIX_RATING_VARIATION",
		"MIX_ITERATIONS", "MATCH_ITERATIONS", "BALANCE_SEED",
	} {
		// Setenv registers the restore, Unsetenv clears the value for this test
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.BalanceModeBalanced, cfg.DefaultMode)
	assert.Equal(t, 100, cfg.BalanceIterations)
	assert.Equal(t, 5, cfg.MixRatingVariation)
	assert.Equal(t, 150, cfg.MixIterations)
	assert.Equal(t, 50, cfg.MatchIterations)
	assert.Equal(t, int64(0), cfg.Seed)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BALANCE_MODE", "random")
	t.Setenv("BALANCE_ITERATIONS", "20")
	t.Setenv("MIX_RATING_VARIATION", "8")
	t.Setenv("MIX_ITERATIONS", "40")
	t.Setenv("MATCH_ITERATIONS", "10")
	t.Setenv("BALANCE_SEED", "1234")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.BalanceModeRandom, cfg.DefaultMode)
	assert.Equal(t, 20, cfg.BalanceIterations)
	assert.Equal(t, 8, cfg.MixRatingVariation)
	assert.Equal(t, 40, cfg.MixIterations)
	assert.Equal(t, 10, cfg.MatchIterations)
	assert.Equal(t, int64(1234), cfg.Seed)
}

func TestLoad_InvalidMode(t *testing.T) {
	t.Setenv("BALANCE_MODE", "chaos")

	_, err := config.Load()
	assert.ErrorIs(t, err, domain.ErrInvalidBalanceMode)
}

func TestLoad_NegativeKnob(t *testing.T) {
	t.Setenv("BALANCE_MODE", "balanced")
	t.Setenv("MIX_RATING_VARIATION", "-1")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_RatingSpreadIsAccepted(t *testing.T) {
	t.Setenv("BALANCE_MODE", "rating-spread")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.BalanceModeRatingSpread, cfg.DefaultMode)
}
