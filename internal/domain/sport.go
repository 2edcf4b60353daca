package domain

import "strings"

// Sport identifies one of the supported leagues.
type Sport string

const (
	SportNFL   Sport = "nfl"
	SportNBA   Sport = "nba"
	SportMLB   Sport = "mlb"
	SportNHL   Sport = "nhl"
	SportNCAAF Sport = "ncaaf"
	SportNCAAB Sport = "ncaab"
)

// allSports is the fixed fan-out order. Error reporting for total failures
// uses this order, so it must stay stable.
var allSports = []Sport{SportNFL, SportNBA, SportMLB, SportNHL, SportNCAAF, SportNCAAB}

// AllSports returns the supported sports in their fixed order.
func AllSports() []Sport {
	out := make([]Sport, len(allSports))
	copy(out, allSports)
	return out
}

// ParseSport maps a league string to a Sport, case-insensitively.
func ParseSport(raw string) (Sport, bool) {
	s := Sport(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range allSports {
		if s == known {
			return known, true
		}
	}
	return "", false
}

// Label returns the display name for the sport.
func (s Sport) Label() string {
	return strings.ToUpper(string(s))
}
