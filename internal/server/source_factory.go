package server

import (
	"log/slog"
	"strings"

	"sportsdesk/internal/config"
	"sportsdesk/internal/logging"
	"sportsdesk/internal/providers"
	"sportsdesk/internal/providers/fixture"
	"sportsdesk/internal/providers/scoreboard"
)

// buildSource selects the raw data source from configuration. Unknown
// names fall back to the fixture source so the service always starts.
func buildSource(cfg config.Config, logger *slog.Logger) providers.Source {
	switch strings.ToLower(strings.TrimSpace(cfg.Source)) {
	case "scoreboard":
		if cfg.Scoreboard.BaseURL == "" {
			logging.Warn(logger, "scoreboard source selected without a base URL, using fixture data")
			return fixture.New()
		}
		return scoreboard.New(scoreboard.Config{
			BaseURL: cfg.Scoreboard.BaseURL,
			Render:  cfg.Scoreboard.Render,
			Timeout: cfg.Scoreboard.Timeout,
		}, logger)
	case "", "fixture":
		return fixture.New()
	default:
		logging.Warn(logger, "unknown source, using fixture data", slog.String(logging.FieldSource, cfg.Source))
		return fixture.New()
	}
}
