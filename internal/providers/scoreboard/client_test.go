package scoreboard

import (
	"context"
	"errors"
	"testing"

	"sportsdesk/internal/domain"
	"sportsdesk/internal/providers"
)

type stubFetcher struct {
	html string
	err  error
	urls []string
}

func (f *stubFetcher) Fetch(ctx context.Context, url string) (string, error) {
	_ = ctx
	f.urls = append(f.urls, url)
	return f.html, f.err
}

const gamesHTML = `
<html><body>
  <div class="game-row">
    <span class="team-name">Celtics</span>
    <span class="team-name">Lakers</span>
    <span class="game-time">7:30 PM</span>
    <span class="game-odds">BOS -4.5</span>
  </div>
  <div class="game-row">
    <span class="team-name">Warriors</span>
    <span class="game-time">10:00 PM</span>
  </div>
  <div class="game-row">
    <span class="team-name">Knicks</span>
    <span class="team-name">Nets</span>
    <span class="game-time">TBD</span>
  </div>
</body></html>`

const statsHTML = `
<html><body>
  <div class="player-row">
    <span class="player-name">Jaylen Brooks</span>
    <span class="player-team">Celtics</span>
    <span class="player-pos">SG</span>
    <span class="stat" data-stat="pts">27.1</span>
    <span class="stat" data-stat="reb">6.3</span>
    <span class="stat">ignored</span>
  </div>
  <div class="player-row">
    <span class="player-team">Nobody</span>
  </div>
</body></html>`

const errorHTML = `
<html><body>
  <div class="scoreboard-error">error: upstream quota exceeded</div>
</body></html>`

func TestFetchGamesParsesRows(t *testing.T) {
	fetcher := &stubFetcher{html: gamesHTML}
	src := New(Config{BaseURL: "https://scores.example/", Fetcher: fetcher}, nil)

	games, err := src.FetchGames(context.Background(), domain.SportNBA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("expected 2 games (single-team row dropped), got %d", len(games))
	}
	if games[0].Teams[0] != "Celtics" || games[0].Teams[1] != "Lakers" {
		t.Errorf("unexpected teams %v", games[0].Teams)
	}
	if games[0].Time != "7:30 PM" || games[0].Odds != "BOS -4.5" {
		t.Errorf("unexpected time/odds %q %q", games[0].Time, games[0].Odds)
	}
	if games[1].Time != "TBD" {
		t.Errorf("placeholder time must survive parsing, got %q", games[1].Time)
	}

	if len(fetcher.urls) != 1 || fetcher.urls[0] != "https://scores.example/scores/nba" {
		t.Errorf("unexpected URL %v", fetcher.urls)
	}
}

func TestFetchStatsParsesRows(t *testing.T) {
	fetcher := &stubFetcher{html: statsHTML}
	src := New(Config{BaseURL: "https://scores.example", Fetcher: fetcher}, nil)

	stats, err := src.FetchStats(context.Background(), domain.SportNBA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("expected 1 stat row (nameless row dropped), got %d", len(stats))
	}
	p := stats[0]
	if p.Name != "Jaylen Brooks" || p.Team != "Celtics" || p.Position != "SG" {
		t.Errorf("unexpected player %+v", p)
	}
	if p.Stats["pts"] != "27.1" || p.Stats["reb"] != "6.3" {
		t.Errorf("unexpected stats %v", p.Stats)
	}
	if _, ok := p.Stats[""]; ok {
		t.Error("cell without data-stat key must be ignored")
	}
}

func TestErrorBannerIsMalformed(t *testing.T) {
	src := New(Config{BaseURL: "https://scores.example", Fetcher: &stubFetcher{html: errorHTML}}, nil)

	_, err := src.FetchGames(context.Background(), domain.SportMLB)
	if err == nil {
		t.Fatal("expected error for payload with error banner")
	}
	mErr, ok := providers.AsMalformedError(err)
	if !ok {
		t.Fatalf("expected MalformedError, got %v", err)
	}
	if mErr.Indicator != "error: upstream quota exceeded" || mErr.Sport != "mlb" {
		t.Errorf("unexpected indicator %+v", mErr)
	}
}

func TestFetchErrorPropagates(t *testing.T) {
	boom := errors.New("connection refused")
	src := New(Config{BaseURL: "https://scores.example", Fetcher: &stubFetcher{err: boom}}, nil)

	if _, err := src.FetchGames(context.Background(), domain.SportNHL); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped fetch error, got %v", err)
	}
	if _, err := src.FetchStats(context.Background(), domain.SportNHL); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped fetch error, got %v", err)
	}
}
