package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dom/team-balancer/internal/domain"
)

type Config struct {
	// Balanced mode
	DefaultMode       domain.BalanceMode
	BalanceIterations int

	// Mix mode
	MixRatingVariation int
	MixIterations      int

	// Multi-match
	MatchIterations int

	// Seed makes generation reproducible when non-zero
	Seed int64
}

func Load() (*Config, error) {
	cfg := &Config{
		DefaultMode:        domain.BalanceMode(getEnv("BALANCE_MODE", string(domain.BalanceModeBalanced))),
		BalanceIterations:  getEnvInt("BALANCE_ITERATIONS", 100),
		MixRatingVariation: getEnvInt("MIX_RATING_VARIATION", 5),
		MixIterations:      getEnvInt("MIX_ITERATIONS", 150),
		MatchIterations:    getEnvInt("MATCH_ITERATIONS", 50),
		Seed:               int64(getEnvInt("BALANCE_SEED", 0)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that every knob is usable
func (c *Config) Validate() error {
	if !c.DefaultMode.IsValid() {
		return fmt.Errorf("BALANCE_MODE %q: %w", c.DefaultMode, domain.ErrInvalidBalanceMode)
	}
	if c.BalanceIterations < 0 {
		return fmt.Errorf("BALANCE_ITERATIONS must be non-negative, got %d", c.BalanceIterations)
	}
	if c.MixRatingVariation < 0 {
		return fmt.Errorf("MIX_RATING_VARIATION must be non-negative, got %d", c.MixRatingVariation)
	}
	if c.MixIterations < 0 {
		return fmt.Errorf("MIX_ITERATIONS must be non-negative, got %d", c.MixIterations)
	}
	if c.MatchIterations < 0 {
		return fmt.Errorf("MATCH_ITERATIONS must be non-negative, got %d", c.MatchIterations)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
