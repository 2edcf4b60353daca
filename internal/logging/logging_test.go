package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
		" info  ": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewLoggerNeverNil(t *testing.T) {
	if NewLogger(Config{}) == nil {
		t.Fatal("expected logger")
	}
	if NewLogger(Config{Format: "json", Service: "sportsdesk", Version: "dev"}) == nil {
		t.Fatal("expected json logger")
	}
}

func TestHelpersTolerateNilLogger(t *testing.T) {
	Info(nil, "ignored")
	Warn(nil, "ignored")
	Error(nil, "ignored", nil)
}

func TestFromContext(t *testing.T) {
	fallback := NewLogger(Config{})
	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatal("expected fallback logger")
	}

	scoped := fallback.With(slog.String(FieldRequestID, "abc"))
	ctx := WithLogger(context.Background(), scoped)
	if got := FromContext(ctx, fallback); got != scoped {
		t.Fatal("expected context logger")
	}
}
