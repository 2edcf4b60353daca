// Package teststubs holds shared test doubles.
package teststubs

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"sportsdesk/internal/domain"
)

// StubSource is a test double for providers.Source.
type StubSource struct {
	GamesFn func(ctx context.Context, sport domain.Sport) ([]domain.Game, error)
	StatsFn func(ctx context.Context, sport domain.Sport) ([]domain.PlayerStat, error)

	GameCalls atomic.Int32
	StatCalls atomic.Int32
}

// FetchGames delegates to GamesFn while tracking calls.
func (s *StubSource) FetchGames(ctx context.Context, sport domain.Sport) ([]domain.Game, error) {
	s.GameCalls.Add(1)
	if s.GamesFn == nil {
		return nil, nil
	}
	return s.GamesFn(ctx, sport)
}

// FetchStats delegates to StatsFn while tracking calls.
func (s *StubSource) FetchStats(ctx context.Context, sport domain.Sport) ([]domain.PlayerStat, error) {
	s.StatCalls.Add(1)
	if s.StatsFn == nil {
		return nil, nil
	}
	return s.StatsFn(ctx, sport)
}

// Clock is a settable time source for freshness tests.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock starts a clock at the given instant.
func NewClock(at time.Time) *Clock {
	return &Clock{now: at}
}

// Now returns the current fake time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
