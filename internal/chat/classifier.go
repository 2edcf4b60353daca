// Package chat answers free-text questions about games, odds, and player
// performance. Classification is a pure, ordered rule cascade: rules are
// tried top-down and the first trigger that matches wins. Every data-fetch
// failure is converted to a user-facing message inside the matching rule,
// so Reply always terminates with text and never returns an error.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"sportsdesk/internal/domain"
	"sportsdesk/internal/logging"
	"sportsdesk/internal/metrics"
)

// GameFinder serves cached game schedules.
type GameFinder interface {
	Games(ctx context.Context, sport domain.Sport) ([]domain.Game, error)
	AllGames(ctx context.Context) ([]domain.Game, error)
}

// StatsFinder fetches player stat lines.
type StatsFinder interface {
	PlayerStats(ctx context.Context, sport domain.Sport) ([]domain.PlayerStat, error)
}

// Engine is the intent classifier and response formatter.
type Engine struct {
	games   GameFinder
	stats   StatsFinder
	rng     *rand.Rand
	logger  *slog.Logger
	metrics *metrics.Recorder
	rules   []rule
}

// rule is one (predicate, handler) pair in the cascade.
type rule struct {
	intent string
	match  func(in string) bool
	handle func(ctx context.Context, input string) string
}

// Options tunes an Engine. The random source drives betting-template
// selection; inject a seeded one in tests.
type Options struct {
	Rand    *rand.Rand
	Logger  *slog.Logger
	Metrics *metrics.Recorder
}

// NewEngine builds the rule cascade over the given collaborators.
func NewEngine(games GameFinder, stats StatsFinder, opts Options) *Engine {
	e := &Engine{
		games:   games,
		stats:   stats,
		rng:     opts.Rand,
		logger:  opts.Logger,
		metrics: opts.Metrics,
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e.rules = []rule{
		{
			intent: "player_stats",
			match:  func(in string) bool { _, _, ok := matchPlayerQuery(in); return ok },
			handle: e.handlePlayerQuery,
		},
		{
			intent: "sport_shortcut",
			match:  func(in string) bool { _, ok := shortcutSport(in); return ok },
			handle: func(ctx context.Context, input string) string {
				sport, _ := shortcutSport(strings.ToLower(input))
				return e.listGames(ctx, sport)
			},
		},
		{
			intent: "sport_disambiguation",
			match: func(in string) bool {
				return strings.Contains(in, "football") || strings.Contains(in, "basketball")
			},
			handle: e.handleAmbiguousSport,
		},
		{
			intent: "league_mention",
			match:  leaguePattern.MatchString,
			handle: func(ctx context.Context, input string) string {
				m := leaguePattern.FindString(strings.ToLower(input))
				sport, _ := domain.ParseSport(m)
				return e.listGames(ctx, sport)
			},
		},
		{
			intent: "all_games",
			match: func(in string) bool {
				for _, term := range []string{"game", "play", "bet", "odds"} {
					if strings.Contains(in, term) {
						return true
					}
				}
				return false
			},
			handle: e.handleAllGames,
		},
		{
			intent: "betting_term",
			match:  func(in string) bool { return matchBettingTopic(in) != nil },
			handle: e.handleBettingTerm,
		},
	}
	return e
}

var leaguePattern = regexp.MustCompile(`\b(nfl|nba|mlb|nhl|ncaaf|ncaab)\b`)

// Reply classifies a message and renders the response. The first rule
// whose trigger matches wins; when nothing matches, the fixed capability
// message is returned.
func (e *Engine) Reply(ctx context.Context, message string) string {
	input := strings.TrimSpace(message)
	in := strings.ToLower(input)

	for _, r := range e.rules {
		if !r.match(in) {
			continue
		}
		e.metrics.RecordIntent(r.intent)
		logging.Debug(e.logger, "intent matched", slog.String(logging.FieldIntent, r.intent))
		return r.handle(ctx, input)
	}

	e.metrics.RecordIntent("fallback")
	return msgFallback
}

// Player-stat query patterns. The name span is the capture group.
var (
	averagingPattern = regexp.MustCompile(`(?i)what(?:'s|\s+is|\s+are)?\s+(.+?)\s+averaging`)
	doingPattern     = regexp.MustCompile(`(?i)how(?:'s|\s+is)\s+(.+?)\s+(?:doing|playing)\b`)
	bestPattern      = regexp.MustCompile(`(?i)who(?:'s|\s+is)?\s+the\s+(?:best|top|leading)\b`)
	statsPattern     = regexp.MustCompile(`(?i)(.+?)(?:'s)?\s+stats\b`)
)

// matchPlayerQuery reports whether the input is a player-stat question.
// top is set for "who is the best/top/leading" phrasings, which have no
// extractable player name.
func matchPlayerQuery(in string) (name string, top bool, ok bool) {
	if m := averagingPattern.FindStringSubmatch(in); m != nil {
		return cleanName(m[1]), false, true
	}
	if m := doingPattern.FindStringSubmatch(in); m != nil {
		return cleanName(m[1]), false, true
	}
	if bestPattern.MatchString(in) {
		return "", true, true
	}
	if m := statsPattern.FindStringSubmatch(in); m != nil {
		return cleanName(m[1]), false, true
	}
	return "", false, false
}

// Filler words trimmed off the ends of an extracted name span.
var (
	leadingFiller = map[string]bool{
		"show": true, "me": true, "tell": true, "give": true, "get": true,
		"what": true, "whats": true, "is": true, "are": true, "the": true,
		"a": true, "for": true, "about": true, "how": true, "good": true,
	}
	trailingFiller = map[string]bool{
		"in": true, "the": true, "this": true, "season": true, "right": true,
		"now": true, "today": true, "nba": true, "nfl": true, "mlb": true,
		"nhl": true, "ncaaf": true, "ncaab": true, "football": true,
		"basketball": true, "baseball": true, "hockey": true, "college": true,
	}
)

func cleanName(span string) string {
	tokens := strings.Fields(span)
	for len(tokens) > 0 && leadingFiller[strings.ToLower(tokens[0])] {
		tokens = tokens[1:]
	}
	for len(tokens) > 0 && trailingFiller[strings.ToLower(tokens[len(tokens)-1])] {
		tokens = tokens[:len(tokens)-1]
	}
	return strings.Join(tokens, " ")
}

func (e *Engine) handlePlayerQuery(ctx context.Context, input string) string {
	sport := detectSport(input)
	name, top, _ := matchPlayerQuery(input)

	players, err := e.stats.PlayerStats(ctx, sport)
	if err != nil || len(players) == 0 {
		logging.Warn(e.logger, "stats unavailable for chat reply",
			slog.String(logging.FieldSport, string(sport)), "error", err)
		return msgStatsTrouble
	}

	if top {
		return formatTopPerformers(sport, players)
	}

	needle := strings.ToLower(name)
	for _, p := range players {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			return formatPlayerCard(sport, p)
		}
	}
	return fmt.Sprintf("I couldn't find stats for %q in the %s. Check the spelling or try another league.", name, sport.Label())
}

// shortcutSport maps a bare generic term to its sole league.
func shortcutSport(in string) (domain.Sport, bool) {
	switch {
	case strings.Contains(in, "hockey"):
		return domain.SportNHL, true
	case strings.Contains(in, "baseball"):
		return domain.SportMLB, true
	default:
		return "", false
	}
}

func (e *Engine) handleAmbiguousSport(ctx context.Context, input string) string {
	in := strings.ToLower(input)
	football := strings.Contains(in, "football")
	college := strings.Contains(in, "college") || strings.Contains(in, "ncaa")
	pro := strings.Contains(in, "nfl") || strings.Contains(in, "nba") || strings.Contains(in, "pro")

	switch {
	case college && football:
		return e.listGames(ctx, domain.SportNCAAF)
	case college:
		return e.listGames(ctx, domain.SportNCAAB)
	case pro && football:
		return e.listGames(ctx, domain.SportNFL)
	case pro:
		return e.listGames(ctx, domain.SportNBA)
	default:
		return msgClarifySport
	}
}

// listGames is the shared per-sport listing body. A fetch failure and an
// empty slate are distinct outcomes: the first is transient trouble, the
// second a normal "nothing found".
func (e *Engine) listGames(ctx context.Context, sport domain.Sport) string {
	games, err := e.games.Games(ctx, sport)
	if err != nil {
		logging.Warn(e.logger, "games unavailable for chat reply",
			slog.String(logging.FieldSport, string(sport)), "error", err)
		return msgGamesTrouble
	}
	if len(games) == 0 {
		return fmt.Sprintf("No %s games on the schedule right now. Try another sport.", sport.Label())
	}
	return formatGamesList(sport, games)
}

func (e *Engine) handleAllGames(ctx context.Context, input string) string {
	games, err := e.games.AllGames(ctx)
	if err != nil {
		logging.Warn(e.logger, "all-sports fetch unavailable for chat reply", "error", err)
		return msgGamesTrouble
	}
	if len(games) == 0 {
		return msgNoGamesAnywhere
	}
	return formatAllSports(games)
}

func matchBettingTopic(in string) *bettingTopic {
	for i := range bettingTopics {
		for _, term := range bettingTopics[i].terms {
			if strings.Contains(in, term) {
				return &bettingTopics[i]
			}
		}
	}
	return nil
}

func (e *Engine) handleBettingTerm(ctx context.Context, input string) string {
	topic := matchBettingTopic(strings.ToLower(input))
	if topic == nil {
		return msgFallback
	}
	return topic.variants[e.rng.Intn(len(topic.variants))]
}
