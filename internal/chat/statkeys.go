package chat

import "sportsdesk/internal/domain"

// statField is one displayed stat: a label, the ordered candidate keys it
// reads from (first present wins), and the default shown when no key
// exists. Sources disagree on key names, hence the chains.
type statField struct {
	Label   string
	Keys    []string
	Default string
}

// statTemplates tabulates the displayed fields per sport.
var statTemplates = map[domain.Sport][]statField{
	domain.SportNBA: {
		{Label: "PPG", Keys: []string{"pts", "points", "avg"}, Default: "0"},
		{Label: "RPG", Keys: []string{"reb", "rebounds"}, Default: "0"},
		{Label: "APG", Keys: []string{"ast", "assists"}, Default: "0"},
		{Label: "FG%", Keys: []string{"fg", "fg_pct", "fgpct"}, Default: "0.00"},
	},
	domain.SportNFL: {
		{Label: "TDs", Keys: []string{"td", "tds", "touchdowns"}, Default: "0"},
		{Label: "Yards", Keys: []string{"yds", "yards"}, Default: "0"},
		{Label: "INTs", Keys: []string{"int", "ints", "interceptions"}, Default: "0"},
	},
	domain.SportMLB: {
		{Label: "AVG", Keys: []string{"avg", "ba", "batting_avg"}, Default: "0.00"},
		{Label: "HR", Keys: []string{"hr", "homeruns", "home_runs"}, Default: "0"},
		{Label: "RBI", Keys: []string{"rbi", "rbis"}, Default: "0"},
	},
	domain.SportNHL: {
		{Label: "Goals", Keys: []string{"goals", "g"}, Default: "0"},
		{Label: "Assists", Keys: []string{"assists", "a"}, Default: "0"},
		{Label: "Points", Keys: []string{"pts", "points"}, Default: "0"},
	},
}

// primaryMetrics ranks top performers per sport.
var primaryMetrics = map[domain.Sport]statField{
	domain.SportNBA:   {Label: "PPG", Keys: []string{"pts", "points", "avg"}},
	domain.SportNCAAB: {Label: "PPG", Keys: []string{"pts", "points", "avg"}},
	domain.SportNFL:   {Label: "TDs", Keys: []string{"td", "tds", "touchdowns"}},
	domain.SportNCAAF: {Label: "TDs", Keys: []string{"td", "tds", "touchdowns"}},
	domain.SportMLB:   {Label: "AVG", Keys: []string{"avg", "ba", "batting_avg"}},
	domain.SportNHL:   {Label: "Goals", Keys: []string{"goals", "g"}},
}

// templateFor returns the displayed fields for a sport; the college
// leagues share their pro counterparts' layout.
func templateFor(sport domain.Sport) []statField {
	switch sport {
	case domain.SportNCAAB:
		return statTemplates[domain.SportNBA]
	case domain.SportNCAAF:
		return statTemplates[domain.SportNFL]
	default:
		return statTemplates[sport]
	}
}
