// Package cache owns the per-sport game cache: fetch orchestration with
// retries, the post-processing pipeline, staleness fallback, and the
// all-sports fan-out.
package cache

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"sportsdesk/internal/domain"
	"sportsdesk/internal/logging"
	"sportsdesk/internal/metrics"
	"sportsdesk/internal/providers"
)

const (
	// DefaultTTL is the freshness threshold: entries younger than this are
	// served without touching the source.
	DefaultTTL = 5 * time.Minute
	// DefaultRetries is how many times a failed fetch is retried after the
	// initial attempt.
	DefaultRetries = 2
	// DefaultRetryDelay is the fixed wait between attempts.
	DefaultRetryDelay = 2 * time.Second
)

type entry struct {
	games       []domain.Game
	lastUpdated time.Time
}

// GameCache holds one entry per sport, each replaced as a whole value on a
// successful refresh. Refreshing one sport never touches the others.
// Concurrent refreshes of the same sport are last-writer-wins; staleness
// tolerance already accommodates slightly inconsistent reads.
type GameCache struct {
	source     providers.GameSource
	logger     *slog.Logger
	metrics    *metrics.Recorder
	ttl        time.Duration
	retries    uint64
	retryDelay time.Duration
	now        func() time.Time

	mu      sync.Mutex
	entries map[domain.Sport]entry
}

// Options tunes cache behavior; zero values take the defaults above.
type Options struct {
	TTL        time.Duration
	Retries    int
	RetryDelay time.Duration
}

// New constructs a GameCache over the given source.
func New(source providers.GameSource, logger *slog.Logger, recorder *metrics.Recorder, opts Options) *GameCache {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Retries < 0 {
		opts.Retries = DefaultRetries
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = DefaultRetryDelay
	}
	return &GameCache{
		source:     source,
		logger:     logger,
		metrics:    recorder,
		ttl:        opts.TTL,
		retries:    uint64(opts.Retries),
		retryDelay: opts.RetryDelay,
		now:        time.Now,
		entries:    make(map[domain.Sport]entry),
	}
}

// Games returns the schedule for one sport. Fresh cached data is served
// directly; otherwise the source is fetched with retries and the result is
// filtered, deduplicated, sorted, and committed when non-empty. When every
// attempt fails, an existing entry is served regardless of age before the
// error is surfaced.
func (c *GameCache) Games(ctx context.Context, sport domain.Sport) ([]domain.Game, error) {
	if games, ok := c.freshGames(sport); ok {
		c.metrics.RecordCacheHit(string(sport))
		return games, nil
	}

	fetched, err := c.fetchWithRetry(ctx, sport)
	if err != nil {
		if games, ok := c.cachedGames(sport); ok {
			c.metrics.RecordStaleServe(string(sport))
			logging.Warn(c.logger, "serving stale games after failed refresh",
				slog.String(logging.FieldSport, string(sport)),
				slog.Int(logging.FieldCount, len(games)),
				"error", err,
			)
			return games, nil
		}
		return nil, err
	}

	processed := postProcess(fetched)
	if len(processed) > 0 {
		c.commit(sport, processed)
	}
	return processed, nil
}

// AllGames fans out across every sport concurrently. Failures in one sport
// never block the others: any non-empty success wins, and only a total
// failure surfaces an error (the first one in fixed sport order).
func (c *GameCache) AllGames(ctx context.Context) ([]domain.Game, error) {
	sports := domain.AllSports()
	results := make([][]domain.Game, len(sports))
	errs := make([]error, len(sports))

	var wg sync.WaitGroup
	for i, sport := range sports {
		wg.Add(1)
		go func(i int, sport domain.Sport) {
			defer wg.Done()
			results[i], errs[i] = c.Games(ctx, sport)
		}(i, sport)
	}
	wg.Wait()

	all := make([]domain.Game, 0)
	var firstErr error
	for i := range sports {
		if errs[i] != nil {
			if firstErr == nil {
				firstErr = errs[i]
			}
			continue
		}
		all = append(all, results[i]...)
	}

	if len(all) == 0 && firstErr != nil {
		return nil, firstErr
	}
	return all, nil
}

// GamesByTeam filters the all-sports schedule by a case-insensitive
// substring match against either team name.
func (c *GameCache) GamesByTeam(ctx context.Context, team string) ([]domain.Game, error) {
	all, err := c.AllGames(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(team))
	matched := make([]domain.Game, 0)
	for _, g := range all {
		for _, name := range g.Teams {
			if strings.Contains(strings.ToLower(name), needle) {
				matched = append(matched, g)
				break
			}
		}
	}
	return matched, nil
}

// Primed reports whether any sport has a committed entry. Used by the
// readiness probe.
func (c *GameCache) Primed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.entries {
		if len(e.games) > 0 {
			return true
		}
	}
	return false
}

func (c *GameCache) fetchWithRetry(ctx context.Context, sport domain.Sport) ([]domain.Game, error) {
	var games []domain.Game
	attempt := 0

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.retryDelay), c.retries),
		ctx,
	)

	err := backoff.Retry(func() error {
		attempt++
		start := time.Now()
		fetched, err := c.source.FetchGames(ctx, sport)
		c.metrics.RecordSourceAttempt(string(sport), time.Since(start), err)
		if err != nil {
			logging.Warn(c.logger, "source fetch failed",
				slog.String(logging.FieldSport, string(sport)),
				slog.Int(logging.FieldAttempt, attempt),
				"error", err,
			)
			return err
		}
		games = fetched
		return nil
	}, policy)
	if err != nil {
		return nil, err
	}
	return games, nil
}

func (c *GameCache) freshGames(sport domain.Sport) ([]domain.Game, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[sport]
	if !ok || len(e.games) == 0 {
		return nil, false
	}
	if c.now().Sub(e.lastUpdated) >= c.ttl {
		return nil, false
	}
	return e.games, true
}

func (c *GameCache) cachedGames(sport domain.Sport) ([]domain.Game, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[sport]
	if !ok || len(e.games) == 0 {
		return nil, false
	}
	return e.games, true
}

func (c *GameCache) commit(sport domain.Sport, games []domain.Game) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[sport] = entry{games: games, lastUpdated: c.now()}
}
