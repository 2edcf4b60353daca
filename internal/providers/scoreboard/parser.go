package scoreboard

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"sportsdesk/internal/domain"
)

// errorIndicator returns the text of an in-payload error banner, or "".
// Hosts report quota and upstream failures inside an otherwise valid page;
// those pages must count as failed fetches, not as empty schedules.
func errorIndicator(doc *goquery.Document) string {
	if banner := strings.TrimSpace(doc.Find("div.scoreboard-error").First().Text()); banner != "" {
		return banner
	}
	if msg, ok := doc.Find("[data-error]").First().Attr("data-error"); ok && strings.TrimSpace(msg) != "" {
		return strings.TrimSpace(msg)
	}
	return ""
}

// parseGames extracts schedule rows. Team pairs arrive in source order;
// records missing either team are dropped here, everything else is left to
// the cache's post-processing pipeline.
func parseGames(doc *goquery.Document, sport domain.Sport) []domain.Game {
	var games []domain.Game

	doc.Find("div.game-row").Each(func(i int, row *goquery.Selection) {
		var teams []string
		row.Find("span.team-name").Each(func(_ int, team *goquery.Selection) {
			if name := strings.TrimSpace(team.Text()); name != "" {
				teams = append(teams, name)
			}
		})
		if len(teams) != 2 {
			return
		}

		games = append(games, domain.Game{
			Sport: sport,
			Teams: teams,
			Time:  strings.TrimSpace(row.Find("span.game-time").First().Text()),
			Odds:  strings.TrimSpace(row.Find("span.game-odds").First().Text()),
		})
	})

	return games
}

// parseStats extracts player stat rows. Stat cells carry their key in a
// data-stat attribute; values stay strings and are coerced lazily at
// display/ranking time.
func parseStats(doc *goquery.Document) []domain.PlayerStat {
	var stats []domain.PlayerStat

	doc.Find("div.player-row").Each(func(i int, row *goquery.Selection) {
		name := strings.TrimSpace(row.Find("span.player-name").First().Text())
		if name == "" {
			return
		}

		line := domain.PlayerStat{
			Name:     name,
			Team:     strings.TrimSpace(row.Find("span.player-team").First().Text()),
			Position: strings.TrimSpace(row.Find("span.player-pos").First().Text()),
			Stats:    make(map[string]any),
		}

		row.Find("span.stat").Each(func(_ int, cell *goquery.Selection) {
			key, ok := cell.Attr("data-stat")
			if !ok {
				return
			}
			key = strings.TrimSpace(key)
			value := strings.TrimSpace(cell.Text())
			if key != "" && value != "" {
				line.Stats[key] = value
			}
		})

		stats = append(stats, line)
	})

	return stats
}
