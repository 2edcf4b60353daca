package domain

// Game is the canonical game shape exposed by the service. Teams holds the
// two participants in source order; Time and Odds are display strings taken
// verbatim from upstream (Time is "H:MM AM/PM", possibly embedded in a
// longer date string).
type Game struct {
	Sport Sport    `json:"sport"`
	Teams []string `json:"teams"`
	Time  string   `json:"time,omitempty"`
	Odds  string   `json:"odds,omitempty"`
}

// HasTeamPair reports whether the record carries exactly two participants,
// the precondition for duplicate comparison.
func (g Game) HasTeamPair() bool {
	return len(g.Teams) == 2
}

// GamesResponse is the payload returned by the games endpoints.
type GamesResponse struct {
	Sport string `json:"sport,omitempty"`
	Games []Game `json:"games"`
}
