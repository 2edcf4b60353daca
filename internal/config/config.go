package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	Source       string
	CacheTTL     Duration
	FetchRetries int
	RetryDelay   Duration
	Scoreboard   ScoreboardConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		Source:       envOrDefault(envSource, defaultSource),
		CacheTTL:     durationEnvOrDefault(envCacheTTL, defaultCacheTTL),
		FetchRetries: intEnvOrDefault(envFetchRetries, defaultFetchRetries),
		RetryDelay:   durationEnvOrDefault(envRetryDelay, defaultRetryDelay),
		Scoreboard:   loadScoreboard(),
		Metrics:      loadMetrics(),
	}
}
