// Package fixture returns a static data set useful for local runs and
// tests. It is the default source so the binary boots without network
// access or a scraping target.
package fixture

import (
	"context"

	"sportsdesk/internal/domain"
)

// Source serves deterministic games and stat lines per sport.
type Source struct{}

// New creates a fixture source.
func New() *Source {
	return &Source{}
}

// FetchGames returns a deterministic schedule for the sport.
func (s *Source) FetchGames(ctx context.Context, sport domain.Sport) ([]domain.Game, error) {
	_ = ctx
	games := fixtureGames[sport]
	out := make([]domain.Game, len(games))
	copy(out, games)
	return out, nil
}

// FetchStats returns a deterministic set of stat lines for the sport.
func (s *Source) FetchStats(ctx context.Context, sport domain.Sport) ([]domain.PlayerStat, error) {
	_ = ctx
	stats := fixtureStats[sport]
	out := make([]domain.PlayerStat, len(stats))
	copy(out, stats)
	return out, nil
}

var fixtureGames = map[domain.Sport][]domain.Game{
	domain.SportNBA: {
		{Sport: domain.SportNBA, Teams: []string{"Celtics", "Lakers"}, Time: "7:30 PM", Odds: "BOS -4.5"},
		{Sport: domain.SportNBA, Teams: []string{"Warriors", "Suns"}, Time: "10:00 PM", Odds: "GSW -2.0"},
	},
	domain.SportNFL: {
		{Sport: domain.SportNFL, Teams: []string{"Chiefs", "Bills"}, Time: "1:00 PM", Odds: "KC -3.0"},
		{Sport: domain.SportNFL, Teams: []string{"Eagles", "Cowboys"}, Time: "4:25 PM", Odds: "PHI -1.5"},
	},
	domain.SportMLB: {
		{Sport: domain.SportMLB, Teams: []string{"Yankees", "Red Sox"}, Time: "7:05 PM", Odds: "NYY -120"},
	},
	domain.SportNHL: {
		{Sport: domain.SportNHL, Teams: []string{"Bruins", "Rangers"}, Time: "7:00 PM", Odds: "BOS -135"},
	},
	domain.SportNCAAF: {
		{Sport: domain.SportNCAAF, Teams: []string{"Georgia", "Alabama"}, Time: "3:30 PM", Odds: "UGA -6.5"},
	},
	domain.SportNCAAB: {
		{Sport: domain.SportNCAAB, Teams: []string{"Duke", "North Carolina"}, Time: "9:00 PM", Odds: "DUKE -3.5"},
	},
}

var fixtureStats = map[domain.Sport][]domain.PlayerStat{
	domain.SportNBA: {
		{Name: "Jaylen Brooks", Team: "Celtics", Position: "SG", Stats: map[string]any{"pts": "27.1", "reb": "6.3", "ast": "4.8", "fg": "48.2"}},
		{Name: "Marcus Vale", Team: "Lakers", Position: "PF", Stats: map[string]any{"pts": "24.9", "reb": "9.7", "ast": "3.1", "fg": "51.0"}},
		{Name: "Devin Okafor", Team: "Suns", Position: "PG", Stats: map[string]any{"pts": "22.4", "reb": "3.9", "ast": "8.6", "fg": "44.7"}},
	},
	domain.SportNFL: {
		{Name: "Trent Malloy", Team: "Chiefs", Position: "QB", Stats: map[string]any{"td": "31", "yds": "4102", "int": "9"}},
		{Name: "Darius Cole", Team: "Bills", Position: "RB", Stats: map[string]any{"td": "14", "yds": "1287"}},
	},
	domain.SportMLB: {
		{Name: "Victor Ramos", Team: "Yankees", Position: "RF", Stats: map[string]any{"avg": ".312", "hr": "38", "rbi": "104"}},
		{Name: "Cody Whitfield", Team: "Red Sox", Position: "1B", Stats: map[string]any{"avg": ".289", "hr": "27", "rbi": "88"}},
	},
	domain.SportNHL: {
		{Name: "Lukas Meier", Team: "Bruins", Position: "C", Stats: map[string]any{"goals": "42", "assists": "51", "pts": "93"}},
		{Name: "Anton Dvorak", Team: "Rangers", Position: "LW", Stats: map[string]any{"goals": "35", "assists": "40", "pts": "75"}},
	},
	domain.SportNCAAF: {
		{Name: "Jalen Pritchard", Team: "Georgia", Position: "QB", Stats: map[string]any{"td": "28", "yds": "3455"}},
	},
	domain.SportNCAAB: {
		{Name: "Miles Harden", Team: "Duke", Position: "G", Stats: map[string]any{"pts": "19.8", "reb": "4.2", "ast": "5.5"}},
	},
}
