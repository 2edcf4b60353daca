// Package identity canonicalizes team names so the same fixture reported
// under franchise/city naming variants ("Lakers", "LA Lakers",
// "Los Angeles Lakers") collapses to one identity.
package identity

import (
	"regexp"
	"sort"
	"strings"
)

// cityPrefixes are multi-word market names stripped before comparison.
// Longer prefixes must be checked before the short abbreviations below.
var cityPrefixes = []string{
	"los angeles",
	"new york",
	"new orleans",
	"new england",
	"new jersey",
	"san francisco",
	"san antonio",
	"san diego",
	"san jose",
	"golden state",
	"kansas city",
	"oklahoma city",
	"salt lake city",
	"tampa bay",
	"green bay",
	"las vegas",
	"st louis",
	"st. louis",
}

// shortPrefixes are common market abbreviations.
var shortPrefixes = []string{
	"la", "ny", "kc", "sf", "gs", "okc", "tb", "gb", "lv",
	"no", "ne", "nj", "sa", "sd", "sj", "stl",
}

// suffixes are club-name qualifiers that carry no identity.
var suffixes = []string{"united", "fc", "city", "town"}

var nonLetters = regexp.MustCompile(`[^a-z]`)

// Normalize reduces a raw team name to its canonical comparison key.
// It never fails; unrecognizable input yields an empty string.
func Normalize(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))

	for _, city := range cityPrefixes {
		if strings.HasPrefix(name, city+" ") {
			name = strings.TrimSpace(strings.TrimPrefix(name, city))
			break
		}
	}
	for _, abbr := range shortPrefixes {
		if strings.HasPrefix(name, abbr+" ") {
			name = strings.TrimSpace(strings.TrimPrefix(name, abbr))
			break
		}
	}
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, " "+suffix) {
			name = strings.TrimSpace(strings.TrimSuffix(name, suffix))
			break
		}
	}

	return nonLetters.ReplaceAllString(name, "")
}

// MatchKey builds an order-independent key for a team pair. Pairs whose
// normalized name sets are equal produce the same key.
func MatchKey(teams []string) string {
	normalized := make([]string, len(teams))
	for i, t := range teams {
		normalized[i] = Normalize(t)
	}
	sort.Strings(normalized)
	return strings.Join(normalized, "|")
}

// SameMatch reports whether two team pairs identify the same fixture,
// regardless of home/away ordering or naming variants.
func SameMatch(a, b []string) bool {
	if len(a) != 2 || len(b) != 2 {
		return false
	}
	return MatchKey(a) == MatchKey(b)
}
