// Package scoreboard scrapes per-sport scoreboard and stat pages from a
// configured host and maps them to domain records. Pages are fetched with
// a plain HTTP client by default, or through a headless browser when the
// host only renders the scoreboard via JavaScript.
package scoreboard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"sportsdesk/internal/domain"
	"sportsdesk/internal/logging"
	"sportsdesk/internal/providers"
)

const sourceName = "scoreboard"

// Config controls how the scoreboard source reaches the upstream host.
type Config struct {
	BaseURL string
	// Render fetches pages through chromedp instead of net/http.
	Render  bool
	Timeout time.Duration
	Fetcher Fetcher // optional override, used by tests
}

// Source fetches and parses scoreboard pages.
type Source struct {
	baseURL string
	fetcher Fetcher
	logger  *slog.Logger
}

// New constructs a scoreboard source. The returned source owns its fetcher
// and must be closed when a rendered fetcher is in use.
func New(cfg Config, logger *slog.Logger) *Source {
	fetcher := cfg.Fetcher
	if fetcher == nil {
		if cfg.Render {
			fetcher = newRenderedFetcher(cfg.Timeout)
		} else {
			fetcher = newHTTPFetcher(cfg.Timeout)
		}
	}
	return &Source{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		fetcher: fetcher,
		logger:  logger,
	}
}

// Close releases fetcher resources.
func (s *Source) Close() {
	if c, ok := s.fetcher.(interface{ Close() }); ok {
		c.Close()
	}
}

// FetchGames scrapes the schedule page for a sport.
func (s *Source) FetchGames(ctx context.Context, sport domain.Sport) ([]domain.Game, error) {
	doc, err := s.fetchDocument(ctx, fmt.Sprintf("%s/scores/%s", s.baseURL, sport))
	if err != nil {
		return nil, fmt.Errorf("fetching %s scores: %w", sport, err)
	}
	if indicator := errorIndicator(doc); indicator != "" {
		return nil, &providers.MalformedError{Source: sourceName, Sport: string(sport), Indicator: indicator}
	}

	games := parseGames(doc, sport)
	logging.Info(s.logger, "scraped games",
		slog.String(logging.FieldSource, sourceName),
		slog.String(logging.FieldSport, string(sport)),
		slog.Int(logging.FieldCount, len(games)),
	)
	return games, nil
}

// FetchStats scrapes the player stats page for a sport.
func (s *Source) FetchStats(ctx context.Context, sport domain.Sport) ([]domain.PlayerStat, error) {
	doc, err := s.fetchDocument(ctx, fmt.Sprintf("%s/stats/%s", s.baseURL, sport))
	if err != nil {
		return nil, fmt.Errorf("fetching %s stats: %w", sport, err)
	}
	if indicator := errorIndicator(doc); indicator != "" {
		return nil, &providers.MalformedError{Source: sourceName, Sport: string(sport), Indicator: indicator}
	}

	stats := parseStats(doc)
	logging.Info(s.logger, "scraped stats",
		slog.String(logging.FieldSource, sourceName),
		slog.String(logging.FieldSport, string(sport)),
		slog.Int(logging.FieldCount, len(stats)),
	)
	return stats, nil
}

func (s *Source) fetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	html, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}
