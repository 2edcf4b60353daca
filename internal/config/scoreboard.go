package config

// ScoreboardConfig controls the scraping source.
type ScoreboardConfig struct {
	BaseURL string
	// Render switches fetching to a headless browser for hosts that only
	// populate the scoreboard via JavaScript.
	Render  bool
	Timeout Duration
}

func loadScoreboard() ScoreboardConfig {
	return ScoreboardConfig{
		BaseURL: envOrDefault(envScoreboardBaseURL, ""),
		Render:  boolEnvOrDefault(envScoreboardRender, false),
		Timeout: durationEnvOrDefault(envScoreboardTimeout, defaultScoreboardTimeout),
	}
}
