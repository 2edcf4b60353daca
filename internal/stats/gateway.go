// Package stats is the pass-through gateway for player statistics. Stats
// change game to game, so unlike schedules they are never cached and never
// retried: a failed fetch is reported to the caller immediately.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"sportsdesk/internal/domain"
	"sportsdesk/internal/logging"
	"sportsdesk/internal/providers"
)

// Gateway forwards stat lookups to the source.
type Gateway struct {
	source providers.StatsSource
	logger *slog.Logger
}

// NewGateway constructs a Gateway over the given source.
func NewGateway(source providers.StatsSource, logger *slog.Logger) *Gateway {
	return &Gateway{source: source, logger: logger}
}

// PlayerStats fetches every stat line for a sport in a single attempt.
func (g *Gateway) PlayerStats(ctx context.Context, sport domain.Sport) ([]domain.PlayerStat, error) {
	stats, err := g.source.FetchStats(ctx, sport)
	if err != nil {
		logging.Warn(g.logger, "stats fetch failed",
			slog.String(logging.FieldSport, string(sport)),
			"error", err,
		)
		return nil, fmt.Errorf("fetching %s stats: %w", sport, err)
	}
	return stats, nil
}

// PlayerStatsByName filters the full result by a case-insensitive
// substring match on player name.
func (g *Gateway) PlayerStatsByName(ctx context.Context, sport domain.Sport, name string) ([]domain.PlayerStat, error) {
	stats, err := g.PlayerStats(ctx, sport)
	if err != nil {
		return nil, err
	}
	return filter(stats, name, func(p domain.PlayerStat) string { return p.Name }), nil
}

// PlayerStatsByTeam filters the full result by a case-insensitive
// substring match on team name.
func (g *Gateway) PlayerStatsByTeam(ctx context.Context, sport domain.Sport, team string) ([]domain.PlayerStat, error) {
	stats, err := g.PlayerStats(ctx, sport)
	if err != nil {
		return nil, err
	}
	return filter(stats, team, func(p domain.PlayerStat) string { return p.Team }), nil
}

func filter(stats []domain.PlayerStat, needle string, field func(domain.PlayerStat) string) []domain.PlayerStat {
	needle = strings.ToLower(strings.TrimSpace(needle))
	matched := make([]domain.PlayerStat, 0)
	for _, p := range stats {
		if strings.Contains(strings.ToLower(field(p)), needle) {
			matched = append(matched, p)
		}
	}
	return matched
}
