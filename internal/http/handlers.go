package http

import (
	"context"
	"encoding/json"
	"log/slog"
	nethttp "net/http"
	"strings"

	"github.com/gorilla/mux"

	"sportsdesk/internal/domain"
)

// GameService is the slice of the game cache the handlers need.
type GameService interface {
	Games(ctx context.Context, sport domain.Sport) ([]domain.Game, error)
	AllGames(ctx context.Context) ([]domain.Game, error)
	GamesByTeam(ctx context.Context, team string) ([]domain.Game, error)
	Primed() bool
}

// StatsService serves player stat lines.
type StatsService interface {
	PlayerStats(ctx context.Context, sport domain.Sport) ([]domain.PlayerStat, error)
	PlayerStatsByName(ctx context.Context, sport domain.Sport, name string) ([]domain.PlayerStat, error)
	PlayerStatsByTeam(ctx context.Context, sport domain.Sport, team string) ([]domain.PlayerStat, error)
}

// ChatService answers free-text questions.
type ChatService interface {
	Reply(ctx context.Context, message string) string
}

// Handler wires HTTP routes to the domain services.
type Handler struct {
	games  GameService
	stats  StatsService
	chat   ChatService
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(games GameService, stats StatsService, chat ChatService, logger *slog.Logger) *Handler {
	return &Handler{games: games, stats: stats, chat: chat, logger: logger}
}

// Health reports liveness.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports readiness: the service is ready once at least one sport
// has a committed cache entry.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.games.Primed() {
		h.writeJSON(w, nethttp.StatusServiceUnavailable, map[string]string{"status": "starting"})
		return
	}
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"})
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Chat answers a free-text question. The reply is always a 200 with text;
// upstream failures surface as message content, not HTTP errors.
func (h *Handler) Chat(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, nethttp.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		h.writeError(w, nethttp.StatusBadRequest, "message is required")
		return
	}

	h.writeJSON(w, nethttp.StatusOK, chatResponse{Reply: h.chat.Reply(r.Context(), req.Message)})
}

// GamesBySport returns the schedule for one league.
func (h *Handler) GamesBySport(w nethttp.ResponseWriter, r *nethttp.Request) {
	sport, ok := domain.ParseSport(mux.Vars(r)["sport"])
	if !ok {
		h.writeError(w, nethttp.StatusBadRequest, "unknown sport")
		return
	}

	games, err := h.games.Games(r.Context(), sport)
	if err != nil {
		h.writeError(w, nethttp.StatusBadGateway, "failed to fetch games")
		return
	}
	h.writeJSON(w, nethttp.StatusOK, domain.GamesResponse{Sport: string(sport), Games: games})
}

// Games returns the all-sports schedule, optionally filtered by a team
// substring.
func (h *Handler) Games(w nethttp.ResponseWriter, r *nethttp.Request) {
	var (
		games []domain.Game
		err   error
	)
	if team := r.URL.Query().Get("team"); team != "" {
		games, err = h.games.GamesByTeam(r.Context(), team)
	} else {
		games, err = h.games.AllGames(r.Context())
	}
	if err != nil {
		h.writeError(w, nethttp.StatusBadGateway, "failed to fetch games")
		return
	}
	h.writeJSON(w, nethttp.StatusOK, domain.GamesResponse{Games: games})
}

// Stats returns player stat lines for one league, optionally filtered by
// player or team substring.
func (h *Handler) Stats(w nethttp.ResponseWriter, r *nethttp.Request) {
	sport, ok := domain.ParseSport(mux.Vars(r)["sport"])
	if !ok {
		h.writeError(w, nethttp.StatusBadRequest, "unknown sport")
		return
	}

	var (
		players []domain.PlayerStat
		err     error
	)
	query := r.URL.Query()
	switch {
	case query.Get("player") != "":
		players, err = h.stats.PlayerStatsByName(r.Context(), sport, query.Get("player"))
	case query.Get("team") != "":
		players, err = h.stats.PlayerStatsByTeam(r.Context(), sport, query.Get("team"))
	default:
		players, err = h.stats.PlayerStats(r.Context(), sport)
	}
	if err != nil {
		h.writeError(w, nethttp.StatusBadGateway, "failed to fetch stats")
		return
	}
	h.writeJSON(w, nethttp.StatusOK, domain.StatsResponse{Sport: string(sport), Players: players})
}

func (h *Handler) writeJSON(w nethttp.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w nethttp.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
