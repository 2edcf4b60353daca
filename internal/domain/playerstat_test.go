package domain

import (
	"encoding/json"
	"testing"
)

func TestStatFallbackChain(t *testing.T) {
	p := PlayerStat{
		Name:  "Jalen Tatum",
		Team:  "Celtics",
		Stats: map[string]any{"points": 27.5, "reb": "8.1"},
	}

	if got := p.Stat("0", "pts", "points", "avg"); got != "27.5" {
		t.Fatalf("expected fallback to points, got %q", got)
	}
	if got := p.Stat("0", "ast", "assists"); got != "0" {
		t.Fatalf("expected default for missing keys, got %q", got)
	}
	if got := p.Stat("0.00", "reb", "rebounds"); got != "8.1" {
		t.Fatalf("expected string value passthrough, got %q", got)
	}
}

func TestCoerceNumber(t *testing.T) {
	cases := []struct {
		in   any
		want float64
	}{
		{".312", 0.312},
		{"41", 41},
		{"n/a", 0},
		{float64(19), 19},
		{json.Number("7.5"), 7.5},
		{nil, 0},
		{[]string{"x"}, 0},
	}
	for _, tc := range cases {
		if got := CoerceNumber(tc.in); got != tc.want {
			t.Errorf("CoerceNumber(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestStatNumberCoercionFailureIsZero(t *testing.T) {
	p := PlayerStat{Stats: map[string]any{"avg": "DNP"}}
	if got := p.StatNumber("avg", "ba"); got != 0 {
		t.Fatalf("unparseable value should rank as 0, got %v", got)
	}
}

func TestParseSport(t *testing.T) {
	if s, ok := ParseSport(" NBA "); !ok || s != SportNBA {
		t.Fatalf("ParseSport(NBA) = %v, %v", s, ok)
	}
	if _, ok := ParseSport("cricket"); ok {
		t.Fatal("cricket is not a supported sport")
	}
}

func TestAllSportsOrderIsStable(t *testing.T) {
	want := []Sport{SportNFL, SportNBA, SportMLB, SportNHL, SportNCAAF, SportNCAAB}
	got := AllSports()
	if len(got) != len(want) {
		t.Fatalf("expected %d sports, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sport order changed at %d: %v", i, got)
		}
	}
}
