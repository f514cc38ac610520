package balancer

import (
	"fmt"

	"github.com/dom/team-balancer/internal/domain"
)

// SplitMatches shuffles the pool once, cuts it into matchCount contiguous
// chunks of len(players)/matchCount players (the last chunk takes the
// remainder) and balances each chunk with BestOf. Results are returned in
// chunk order. Chunks with fewer than two players are skipped.
func SplitMatches(players []domain.Player, matchCount, iterations int, src Source) ([]*domain.TeamPair, error) {
	if matchCount < 1 || len(players) < matchCount*2 {
		return nil, fmt.Errorf("split %d players into %d matches: %w",
			len(players), matchCount, domain.ErrInsufficientPlayers)
	}
	src = sourceOrDefault(src)

	pool := make([]domain.Player, len(players))
	copy(pool, players)
	shuffle(src, pool)

	chunkSize := len(pool) / matchCount
	matches := make([]*domain.TeamPair, 0, matchCount)
	for i := 0; i < matchCount; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if i == matchCount-1 {
			end = len(pool)
		}

		chunk := pool[start:end]
		if len(chunk) < 2 {
			continue
		}

		pair, err := BestOf(chunk, iterations, src)
		if err != nil {
			return nil, err
		}
		matches = append(matches, pair)
	}
	return matches, nil
}
