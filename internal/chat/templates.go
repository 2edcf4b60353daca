package chat

import "sportsdesk/internal/domain"

const (
	// msgFallback is returned verbatim whenever no rule matches.
	msgFallback = "I can help with game schedules, player stats, and betting info. " +
		"Try asking about NBA, NFL, MLB, NHL, or college games, a player's stats, " +
		"or a betting term like parlay or spread."

	// msgClarifySport asks which football/basketball league the user means.
	msgClarifySport = "Pro or college? Ask me about the NFL, NCAAF, NBA, or NCAAB and I'll pull it up."

	msgStatsTrouble = "I'm having trouble pulling stats right now. Give it another try in a bit."

	msgGamesTrouble = "I'm having trouble reaching the scoreboard right now. Give it another try in a bit."

	msgNoGamesAnywhere = "No games on the board across the leagues right now. Try asking about a specific sport."
)

// sportInsights is the one-line commentary appended under each sport's
// game list.
var sportInsights = map[domain.Sport]string{
	domain.SportNFL:   "Sunday slates move fast. Lines shift the most in the final hour before kickoff.",
	domain.SportNBA:   "Keep an eye on late scratches. NBA totals swing hard when a starter sits.",
	domain.SportMLB:   "Starting pitchers drive MLB lines. Check the probables before you commit.",
	domain.SportNHL:   "Goalie confirmations land about an hour before puck drop and move NHL lines.",
	domain.SportNCAAF: "College football spreads run wide. Shop around before locking anything in.",
	domain.SportNCAAB: "Home court matters more in college hoops than anywhere else.",
}

const genericInsight = "Lines move all day. Check back close to game time for the latest numbers."

func insightFor(sport domain.Sport) string {
	if line, ok := sportInsights[sport]; ok {
		return line
	}
	return genericInsight
}

// bettingTopic is one betting-vocabulary group: the terms that trigger it
// and three reply variants, one of which is picked at random.
type bettingTopic struct {
	name     string
	terms    []string
	variants [3]string
}

// bettingTopics are checked in a fixed order; the first group with a
// matching term wins.
var bettingTopics = []bettingTopic{
	{
		name:  "parlay",
		terms: []string{"parlay", "accumulator"},
		variants: [3]string{
			"A parlay chains multiple bets into one ticket. Every leg has to hit, but the payout multiplies with each one.",
			"Parlays combine several picks into a single wager. Bigger payout, but one miss sinks the whole ticket.",
			"A parlay is an all-or-nothing combo bet. Each added leg boosts the payout and the risk.",
		},
	},
	{
		name:  "over-under",
		terms: []string{"over/under", "over-under", "over under", "totals", "total"},
		variants: [3]string{
			"The over/under is the combined points total for a game. You bet whether the real score lands above or below it.",
			"An over/under bet is on the total score, not the winner. Over if you think it goes high, under if you think it stays low.",
			"Totals betting means picking over or under the bookmaker's combined-score line. The teams' records don't matter, just the points.",
		},
	},
	{
		name:  "spread",
		terms: []string{"spread", "the line", "point spread"},
		variants: [3]string{
			"The spread is a handicap on the favorite. They have to win by more than the number for a spread bet to cash.",
			"Spread betting levels the matchup: the favorite gives points, the underdog gets them. Cover the number and you win.",
			"A point spread sets how much the favorite is expected to win by. Bet the favorite minus the points or the dog plus them.",
		},
	},
	{
		name:  "prop",
		terms: []string{"prop bet", "prop bets", "props", "prop"},
		variants: [3]string{
			"A prop bet targets a specific event inside the game, like a player's points or the first team to score.",
			"Props are side bets on individual outcomes rather than the final score. Player points, rebounds, touchdowns, you name it.",
			"Prop bets let you wager on in-game specifics independent of who wins. Player and team props are the common ones.",
		},
	},
}
