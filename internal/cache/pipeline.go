package cache

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"sportsdesk/internal/domain"
	"sportsdesk/internal/identity"
)

// clockToken matches an "H:MM" time, optionally followed by a meridiem,
// anywhere inside the raw time string (which may embed a date).
var clockToken = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*([AP]M)?`)

// missingTimeMinutes sorts records without a parseable time last,
// the "99:99 PM" convention.
const missingTimeMinutes = (99+12)*60 + 99

// postProcess applies the fixed pipeline to raw fetch results:
// drop records without a scheduled time, keep the first record per
// normalized team pair, then sort ascending by time of day.
func postProcess(games []domain.Game) []domain.Game {
	kept := make([]domain.Game, 0, len(games))
	seen := make(map[string]bool, len(games))

	for _, g := range games {
		// Records lacking a colon time are placeholder/TBD entries.
		if !clockToken.MatchString(g.Time) {
			continue
		}
		key := identity.MatchKey(g.Teams)
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, g)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return clockMinutes(kept[i].Time) < clockMinutes(kept[j].Time)
	})
	return kept
}

// clockMinutes converts a time string to minutes-of-day. PM hours other
// than 12 add twelve hours, 12 AM subtracts twelve; times without a
// meridiem are taken literally.
func clockMinutes(raw string) int {
	m := clockToken.FindStringSubmatch(raw)
	if m == nil {
		return missingTimeMinutes
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])

	switch strings.ToUpper(m[3]) {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour -= 12
		}
	}
	return hour*60 + minute
}
