package http

import (
	"context"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sportsdesk/internal/domain"
)

type fakeGameService struct {
	games   []domain.Game
	err     error
	primed  bool
	byTeam  string
	askedBy string
}

func (f *fakeGameService) Games(ctx context.Context, sport domain.Sport) ([]domain.Game, error) {
	f.askedBy = "sport"
	return f.games, f.err
}

func (f *fakeGameService) AllGames(ctx context.Context) ([]domain.Game, error) {
	f.askedBy = "all"
	return f.games, f.err
}

func (f *fakeGameService) GamesByTeam(ctx context.Context, team string) ([]domain.Game, error) {
	f.askedBy = "team"
	f.byTeam = team
	return f.games, f.err
}

func (f *fakeGameService) Primed() bool { return f.primed }

type fakeStatsService struct {
	players []domain.PlayerStat
	err     error
	filter  string
}

func (f *fakeStatsService) PlayerStats(ctx context.Context, sport domain.Sport) ([]domain.PlayerStat, error) {
	f.filter = ""
	return f.players, f.err
}

func (f *fakeStatsService) PlayerStatsByName(ctx context.Context, sport domain.Sport, name string) ([]domain.PlayerStat, error) {
	f.filter = "player=" + name
	return f.players, f.err
}

func (f *fakeStatsService) PlayerStatsByTeam(ctx context.Context, sport domain.Sport, team string) ([]domain.PlayerStat, error) {
	f.filter = "team=" + team
	return f.players, f.err
}

type fakeChat struct{ reply string }

func (f fakeChat) Reply(ctx context.Context, message string) string { return f.reply }

func newTestRouter(games *fakeGameService, stats *fakeStatsService, chat ChatService) nethttp.Handler {
	return NewRouter(NewHandler(games, stats, chat, nil))
}

func doRequest(t *testing.T, h nethttp.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *nethttp.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h := newTestRouter(&fakeGameService{}, &fakeStatsService{}, fakeChat{})
	rec := doRequest(t, h, nethttp.MethodGet, "/health", "")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyReflectsCachePriming(t *testing.T) {
	games := &fakeGameService{}
	h := newTestRouter(games, &fakeStatsService{}, fakeChat{})

	if rec := doRequest(t, h, nethttp.MethodGet, "/ready", ""); rec.Code != nethttp.StatusServiceUnavailable {
		t.Fatalf("expected 503 before priming, got %d", rec.Code)
	}

	games.primed = true
	if rec := doRequest(t, h, nethttp.MethodGet, "/ready", ""); rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200 after priming, got %d", rec.Code)
	}
}

func TestChatRepliesWithText(t *testing.T) {
	h := newTestRouter(&fakeGameService{}, &fakeStatsService{}, fakeChat{reply: "NBA games today:"})

	rec := doRequest(t, h, nethttp.MethodPost, "/chat", `{"message":"nba"}`)
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp chatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Reply != "NBA games today:" {
		t.Fatalf("unexpected reply %q", resp.Reply)
	}
}

func TestChatRejectsBadInput(t *testing.T) {
	h := newTestRouter(&fakeGameService{}, &fakeStatsService{}, fakeChat{})

	if rec := doRequest(t, h, nethttp.MethodPost, "/chat", "{not json"); rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", rec.Code)
	}
	if rec := doRequest(t, h, nethttp.MethodPost, "/chat", `{"message":"  "}`); rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("expected 400 for blank message, got %d", rec.Code)
	}
}

func TestGamesBySport(t *testing.T) {
	games := &fakeGameService{games: []domain.Game{
		{Sport: domain.SportNHL, Teams: []string{"Bruins", "Rangers"}, Time: "7:00 PM"},
	}}
	h := newTestRouter(games, &fakeStatsService{}, fakeChat{})

	rec := doRequest(t, h, nethttp.MethodGet, "/games/nhl", "")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp domain.GamesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Sport != "nhl" || len(resp.Games) != 1 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestGamesBySportRejectsUnknownLeague(t *testing.T) {
	h := newTestRouter(&fakeGameService{}, &fakeStatsService{}, fakeChat{})
	if rec := doRequest(t, h, nethttp.MethodGet, "/games/cricket", ""); rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGamesBySportUpstreamFailure(t *testing.T) {
	games := &fakeGameService{err: errors.New("source down")}
	h := newTestRouter(games, &fakeStatsService{}, fakeChat{})
	if rec := doRequest(t, h, nethttp.MethodGet, "/games/nba", ""); rec.Code != nethttp.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestGamesTeamFilterRoutes(t *testing.T) {
	games := &fakeGameService{}
	h := newTestRouter(games, &fakeStatsService{}, fakeChat{})

	doRequest(t, h, nethttp.MethodGet, "/games?team=lakers", "")
	if games.askedBy != "team" || games.byTeam != "lakers" {
		t.Fatalf("expected a team-filtered lookup, got %q/%q", games.askedBy, games.byTeam)
	}

	doRequest(t, h, nethttp.MethodGet, "/games", "")
	if games.askedBy != "all" {
		t.Fatalf("expected the all-sports lookup, got %q", games.askedBy)
	}
}

func TestStatsFilters(t *testing.T) {
	stats := &fakeStatsService{players: []domain.PlayerStat{{Name: "Connor Hale"}}}
	h := newTestRouter(&fakeGameService{}, stats, fakeChat{})

	rec := doRequest(t, h, nethttp.MethodGet, "/stats/nhl?player=hale", "")
	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stats.filter != "player=hale" {
		t.Fatalf("expected the player filter, got %q", stats.filter)
	}

	doRequest(t, h, nethttp.MethodGet, "/stats/nhl?team=bruins", "")
	if stats.filter != "team=bruins" {
		t.Fatalf("expected the team filter, got %q", stats.filter)
	}
}

func TestRouterMethodConstraints(t *testing.T) {
	h := newTestRouter(&fakeGameService{}, &fakeStatsService{}, fakeChat{})
	if rec := doRequest(t, h, nethttp.MethodGet, "/chat", ""); rec.Code != nethttp.StatusMethodNotAllowed {
		t.Fatalf("expected 405 for GET /chat, got %d", rec.Code)
	}
}
