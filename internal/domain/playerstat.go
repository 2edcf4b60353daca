package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// PlayerStat is one player's stat line. Stats is a free-form key/value
// mapping; keys vary by sport and source, so callers resolve display fields
// through ordered candidate-key chains rather than fixed struct fields.
type PlayerStat struct {
	Name     string         `json:"name"`
	Team     string         `json:"team"`
	Position string         `json:"position,omitempty"`
	Stats    map[string]any `json:"stats"`
}

// Stat returns the first present candidate key formatted for display, or
// def when none of the keys exist.
func (p PlayerStat) Stat(def string, keys ...string) string {
	for _, key := range keys {
		if v, ok := p.Stats[key]; ok {
			return StatString(v)
		}
	}
	return def
}

// StatNumber resolves the first present candidate key as a number.
// Values that fail numeric coercion count as 0.
func (p PlayerStat) StatNumber(keys ...string) float64 {
	for _, key := range keys {
		if v, ok := p.Stats[key]; ok {
			return CoerceNumber(v)
		}
	}
	return 0
}

// CoerceNumber converts a stat value (string, JSON number, or native
// numeric) to a float64, returning 0 when it cannot be parsed.
func CoerceNumber(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// StatString formats a stat value for display without trailing float noise.
func StatString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// StatsResponse is the payload returned by the stats endpoint.
type StatsResponse struct {
	Sport   string       `json:"sport"`
	Players []PlayerStat `json:"players"`
}
