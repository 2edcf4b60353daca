package stats

import (
	"context"
	"errors"
	"testing"

	"sportsdesk/internal/domain"
	"sportsdesk/internal/teststubs"
)

func stubStats() []domain.PlayerStat {
	return []domain.PlayerStat{
		{Name: "Jaylen Brooks", Team: "Celtics", Stats: map[string]any{"pts": "27.1"}},
		{Name: "Marcus Vale", Team: "Lakers", Stats: map[string]any{"pts": "24.9"}},
		{Name: "Jalen Vale", Team: "Lakers", Stats: map[string]any{"pts": "12.2"}},
	}
}

func TestPlayerStatsPassThrough(t *testing.T) {
	src := &teststubs.StubSource{
		StatsFn: func(ctx context.Context, sport domain.Sport) ([]domain.PlayerStat, error) {
			return stubStats(), nil
		},
	}
	g := NewGateway(src, nil)

	stats, err := g.PlayerStats(context.Background(), domain.SportNBA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats) != 3 {
		t.Fatalf("expected 3 stat lines, got %d", len(stats))
	}
	if got := src.StatCalls.Load(); got != 1 {
		t.Fatalf("expected exactly one fetch (no retry), got %d", got)
	}
}

func TestPlayerStatsErrorPropagates(t *testing.T) {
	boom := errors.New("malformed payload")
	src := &teststubs.StubSource{
		StatsFn: func(ctx context.Context, sport domain.Sport) ([]domain.PlayerStat, error) {
			return nil, boom
		},
	}
	g := NewGateway(src, nil)

	if _, err := g.PlayerStats(context.Background(), domain.SportNHL); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped source error, got %v", err)
	}
	if got := src.StatCalls.Load(); got != 1 {
		t.Fatalf("gateway must not retry, got %d calls", got)
	}
}

func TestPlayerStatsByNameFilters(t *testing.T) {
	src := &teststubs.StubSource{
		StatsFn: func(ctx context.Context, sport domain.Sport) ([]domain.PlayerStat, error) {
			return stubStats(), nil
		},
	}
	g := NewGateway(src, nil)

	stats, err := g.PlayerStatsByName(context.Background(), domain.SportNBA, "vale")
	if err != nil {
		t.Fatal(err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(stats))
	}

	stats, err = g.PlayerStatsByName(context.Background(), domain.SportNBA, "JAYLEN")
	if err != nil {
		t.Fatal(err)
	}
	if len(stats) != 1 || stats[0].Name != "Jaylen Brooks" {
		t.Fatalf("expected the Brooks line, got %v", stats)
	}
}

func TestPlayerStatsByTeamFilters(t *testing.T) {
	src := &teststubs.StubSource{
		StatsFn: func(ctx context.Context, sport domain.Sport) ([]domain.PlayerStat, error) {
			return stubStats(), nil
		},
	}
	g := NewGateway(src, nil)

	stats, err := g.PlayerStatsByTeam(context.Background(), domain.SportNBA, "laker")
	if err != nil {
		t.Fatal(err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 Lakers lines, got %d", len(stats))
	}
}
