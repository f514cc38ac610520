package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/dom/team-balancer/internal/balancer"
	"github.com/dom/team-balancer/internal/config"
	"github.com/dom/team-balancer/internal/domain"
)

type TeamService struct {
	cfg *config.Config
}

func NewTeamService(cfg *config.Config) *TeamService {
	return &TeamService{cfg: cfg}
}

// GeneratedTeams is one balanced match ready to render
type GeneratedTeams struct {
	ID          uuid.UUID          `json:"id"`
	MatchNumber int                `json:"matchNumber"`
	Mode        domain.BalanceMode `json:"mode"`
	Teams       *domain.TeamPair   `json:"teams"`
	Team1Stats  domain.TeamStats   `json:"team1Stats"`
	Team2Stats  domain.TeamStats   `json:"team2Stats"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// GenerateTeams splits the roster into two squads using the given mode.
// An empty mode falls back to the configured default.
func (s *TeamService) GenerateTeams(ctx context.Context, players []domain.Player, mode domain.BalanceMode) (*GeneratedTeams, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if mode == "" {
		mode = s.cfg.DefaultMode
	}
	if err := ValidateRoster(players); err != nil {
		log.Printf("ERROR [service.GenerateTeams] invalid roster: %v", err)
		return nil, err
	}

	var (
		pair *domain.TeamPair
		err  error
	)
	switch mode {
	case domain.BalanceModeBalanced:
		pair, err = balancer.BestOf(players, s.cfg.BalanceIterations, s.source())
	case domain.BalanceModeRandom:
		pair, err = balancer.RandomizedBestOf(players, s.cfg.MixRatingVariation, s.cfg.MixIterations, s.source())
	default:
		err = unsupportedMode(mode)
	}
	if err != nil {
		log.Printf("ERROR [service.GenerateTeams] mode=%s players=%d: %v", mode, len(players), err)
		return nil, err
	}

	return newGeneratedTeams(pair, mode, 1), nil
}

// GenerateMatches splits the roster into matchCount simultaneous balanced matches
func (s *TeamService) GenerateMatches(ctx context.Context, players []domain.Player, matchCount int) ([]*GeneratedTeams, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateRoster(players); err != nil {
		log.Printf("ERROR [service.GenerateMatches] invalid roster: %v", err)
		return nil, err
	}

	pairs, err := balancer.SplitMatches(players, matchCount, s.cfg.MatchIterations, s.source())
	if err != nil {
		log.Printf("ERROR [service.GenerateMatches] matchCount=%d players=%d: %v", matchCount, len(players), err)
		return nil, err
	}

	matches := make([]*GeneratedTeams, len(pairs))
	for i, pair := range pairs {
		matches[i] = newGeneratedTeams(pair, domain.BalanceModeBalanced, i+1)
	}
	return matches, nil
}

// Stats summarizes a selection of players
func (s *TeamService) Stats(players []domain.Player) domain.TeamStats {
	return balancer.Stats(players)
}

// ValidateRoster checks ratings and player ID uniqueness
func ValidateRoster(players []domain.Player) error {
	for _, p := range players {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("player %d (%s) rating %d: %w", p.ID, p.Name, p.Rating, err)
		}
	}

	dupes := lo.FindDuplicatesBy(players, func(p domain.Player) int { return p.ID })
	if len(dupes) > 0 {
		return fmt.Errorf("player %d: %w", dupes[0].ID, domain.ErrDuplicatePlayer)
	}
	return nil
}

// source returns a fresh per-call Source when a seed is configured so that
// concurrent calls never share generator state.
func (s *TeamService) source() balancer.Source {
	if s.cfg.Seed != 0 {
		return balancer.NewSource(s.cfg.Seed)
	}
	return balancer.DefaultSource
}

func newGeneratedTeams(pair *domain.TeamPair, mode domain.BalanceMode, matchNumber int) *GeneratedTeams {
	return &GeneratedTeams{
		ID:          uuid.New(),
		MatchNumber: matchNumber,
		Mode:        mode,
		Teams:       pair,
		Team1Stats:  balancer.Stats(pair.Team1),
		Team2Stats:  balancer.Stats(pair.Team2),
		CreatedAt:   time.Now(),
	}
}

func unsupportedMode(mode domain.BalanceMode) error {
	if mode.IsValid() {
		return fmt.Errorf("%s: %w", mode, domain.ErrUnsupportedBalanceMode)
	}
	return fmt.Errorf("%q: %w", mode, domain.ErrInvalidBalanceMode)
}
