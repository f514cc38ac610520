package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dom/team-balancer/internal/config"
	"github.com/dom/team-balancer/internal/domain"
	"github.com/dom/team-balancer/internal/roster"
	"github.com/dom/team-balancer/internal/service"
)

var rootCmd = &cobra.Command{
	Use:   "teambalancer",
	Short: "Split a rated player pool into evenly matched teams",
	Long: `teambalancer reads a roster file (YAML or JSON) of {id, name, rating}
players and splits it into balanced squads.

ENVIRONMENT:
  BALANCE_MODE          default mode for "split" (balanced|random)
  BALANCE_ITERATIONS    shuffles tried in balanced mode (default 100)
  MIX_RATING_VARIATION  rating noise in random mode (default 5)
  MIX_ITERATIONS        trials in random mode (default 150)
  MATCH_ITERATIONS      shuffles per match for "matches" (default 50)
  BALANCE_SEED          non-zero makes output reproducible`,
	SilenceUsage: true,
}

var (
	rosterPath string
	outputJSON bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&rosterPath, "roster", "r", "", "roster file (.yaml, .yml or .json)")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output results as JSON")
	if err := rootCmd.MarkPersistentFlagRequired("roster"); err != nil {
		panic(err)
	}
}

// loadServices reads configuration and the roster named by --roster.
// Overrides run after the environment is loaded and before validation.
func loadServices(overrides ...func(*config.Config)) (*service.Services, []domain.Player, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	for _, override := range overrides {
		override(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid flags: %w", err)
	}

	r, err := roster.Load(rosterPath)
	if err != nil {
		return nil, nil, err
	}

	return service.NewServices(cfg), r.Players, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printTeams(w io.Writer, result *service.GeneratedTeams) {
	pair := result.Teams
	fmt.Fprintf(w, "Match %d (%s) - rating difference %d\n", result.MatchNumber, result.Mode, pair.RatingDifference)
	printSquad(w, "Team 1", pair.Team1, result.Team1Stats, pair.SubstituteInfo)
	printSquad(w, "Team 2", pair.Team2, result.Team2Stats, pair.SubstituteInfo)

	if sub := pair.SubstituteInfo; sub != nil && sub.RotationPlayer != nil {
		fmt.Fprintf(w, "  Substitute %s rotates with %s (team %d)\n",
			sub.Substitute.Name, sub.RotationPlayer.Name, sub.TeamWithSub)
	}
}

func printSquad(w io.Writer, label string, squad domain.Squad, stats domain.TeamStats, sub *domain.SubstitutePair) {
	fmt.Fprintf(w, "  %s: total %d, avg %d, min %d, max %d\n",
		label, stats.TotalRating, stats.AverageRating, stats.MinRating, stats.MaxRating)
	for _, p := range squad {
		marker := ""
		if sub != nil && sub.Substitute.ID == p.ID {
			marker = " (sub)"
		}
		fmt.Fprintf(w, "    %-20s %3d%s\n", p.Name, p.Rating, marker)
	}
}
