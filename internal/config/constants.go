package config

import "time"

const (
	envPort         = "PORT"
	envSource       = "SOURCE"
	envCacheTTL     = "CACHE_TTL"
	envFetchRetries = "FETCH_RETRIES"
	envRetryDelay   = "FETCH_RETRY_DELAY"

	envScoreboardBaseURL = "SCOREBOARD_BASE_URL"
	envScoreboardRender  = "SCOREBOARD_RENDER"
	envScoreboardTimeout = "SCOREBOARD_TIMEOUT"

	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort   = "4000"
	defaultSource = "fixture"
	// Entries younger than this are served without touching the source.
	defaultCacheTTL = 5 * Duration(time.Minute)
	// Retries after the initial attempt, spaced by the fixed retry delay.
	defaultFetchRetries = 2
	defaultRetryDelay   = 2 * Duration(time.Second)

	defaultScoreboardTimeout = 30 * Duration(time.Second)

	defaultMetricsPort = "9090"
)
