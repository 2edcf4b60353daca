package chat

import (
	"strings"

	"sportsdesk/internal/domain"
)

// detectSport infers the league a message is about. Keywords are checked
// in a fixed order; basketball is the default when nothing matches.
func detectSport(input string) domain.Sport {
	in := strings.ToLower(input)
	college := strings.Contains(in, "college") || strings.Contains(in, "ncaa")

	switch {
	case strings.Contains(in, "ncaaf"):
		return domain.SportNCAAF
	case strings.Contains(in, "football") || strings.Contains(in, "nfl"):
		if college && !strings.Contains(in, "nfl") {
			return domain.SportNCAAF
		}
		return domain.SportNFL
	case strings.Contains(in, "baseball") || strings.Contains(in, "mlb"):
		return domain.SportMLB
	case strings.Contains(in, "hockey") || strings.Contains(in, "nhl"):
		return domain.SportNHL
	case strings.Contains(in, "ncaab"):
		return domain.SportNCAAB
	case college:
		return domain.SportNCAAB
	default:
		return domain.SportNBA
	}
}
