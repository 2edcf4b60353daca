package providers

import (
	"context"

	"sportsdesk/internal/domain"
)

// GameSource defines how upstream schedule data is fetched and normalized.
// Implementations may be slow and are expected to fail; callers own retry
// and caching policy.
type GameSource interface {
	FetchGames(ctx context.Context, sport domain.Sport) ([]domain.Game, error)
}

// StatsSource fetches normalized player stat lines for a sport.
type StatsSource interface {
	FetchStats(ctx context.Context, sport domain.Sport) ([]domain.PlayerStat, error)
}

// Source combines all source capabilities.
type Source interface {
	GameSource
	StatsSource
}
