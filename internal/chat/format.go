package chat

import (
	"fmt"
	"sort"
	"strings"

	"sportsdesk/internal/domain"
)

// formatGameLine renders one game as "TeamA vs TeamB (time) [odds]".
// The odds bracket is omitted when the source carried no odds.
func formatGameLine(g domain.Game) string {
	var b strings.Builder
	b.WriteString(strings.Join(g.Teams, " vs "))
	if g.Time != "" {
		fmt.Fprintf(&b, " (%s)", g.Time)
	}
	if g.Odds != "" {
		fmt.Fprintf(&b, " [%s]", g.Odds)
	}
	return b.String()
}

// formatGamesList renders a sport's slate with its insight line.
func formatGamesList(sport domain.Sport, games []domain.Game) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s games today:\n", sport.Label())
	for _, g := range games {
		b.WriteString(formatGameLine(g))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(insightFor(sport))
	return b.String()
}

// formatAllSports groups games by sport in the fixed league order and
// renders one block per sport that has games.
func formatAllSports(games []domain.Game) string {
	bySport := make(map[domain.Sport][]domain.Game, len(games))
	for _, g := range games {
		bySport[g.Sport] = append(bySport[g.Sport], g)
	}

	var b strings.Builder
	b.WriteString("Here's what's on the board:\n")
	for _, sport := range domain.AllSports() {
		slate := bySport[sport]
		if len(slate) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s:\n", sport.Label())
		for _, g := range slate {
			b.WriteString(formatGameLine(g))
			b.WriteByte('\n')
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatPlayerCard renders one player's stat line using the sport's field
// template. Missing keys fall back to the field default, so a card is
// always complete.
func formatPlayerCard(sport domain.Sport, p domain.PlayerStat) string {
	var b strings.Builder
	b.WriteString(p.Name)
	if p.Team != "" {
		fmt.Fprintf(&b, " (%s)", p.Team)
	}
	if p.Position != "" {
		fmt.Fprintf(&b, ", %s", p.Position)
	}
	b.WriteString(":")
	for _, f := range templateFor(sport) {
		fmt.Fprintf(&b, " %s %s,", p.Stat(f.Default, f.Keys...), f.Label)
	}
	return strings.TrimRight(b.String(), ",")
}

// formatTopPerformers ranks players by the sport's primary metric and
// renders the top five.
func formatTopPerformers(sport domain.Sport, players []domain.PlayerStat) string {
	metric := primaryMetrics[sport]
	ranked := make([]domain.PlayerStat, len(players))
	copy(ranked, players)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].StatNumber(metric.Keys...) > ranked[j].StatNumber(metric.Keys...)
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Top %s performers by %s:\n", sport.Label(), metric.Label)
	for i, p := range ranked {
		fmt.Fprintf(&b, "%d. %s", i+1, p.Name)
		if p.Team != "" {
			fmt.Fprintf(&b, " (%s)", p.Team)
		}
		fmt.Fprintf(&b, " - %s %s\n", p.Stat("0", metric.Keys...), metric.Label)
	}
	return strings.TrimRight(b.String(), "\n")
}
