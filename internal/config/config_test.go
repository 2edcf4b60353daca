package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Errorf("Port = %q, want %q", cfg.Port, defaultPort)
	}
	if cfg.Source != "fixture" {
		t.Errorf("Source = %q, want fixture", cfg.Source)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Errorf("CacheTTL = %v, want 5m", cfg.CacheTTL)
	}
	if cfg.FetchRetries != 2 {
		t.Errorf("FetchRetries = %d, want 2", cfg.FetchRetries)
	}
	if cfg.RetryDelay != 2*time.Second {
		t.Errorf("RetryDelay = %v, want 2s", cfg.RetryDelay)
	}
	if cfg.Metrics.Port != defaultMetricsPort {
		t.Errorf("Metrics.Port = %q, want %q", cfg.Metrics.Port, defaultMetricsPort)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(envPort, "8088")
	t.Setenv(envSource, "scoreboard")
	t.Setenv(envCacheTTL, "90s")
	t.Setenv(envFetchRetries, "4")
	t.Setenv(envScoreboardRender, "true")

	cfg := Load()
	if cfg.Port != "8088" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.Source != "scoreboard" {
		t.Errorf("Source = %q", cfg.Source)
	}
	if cfg.CacheTTL != 90*time.Second {
		t.Errorf("CacheTTL = %v", cfg.CacheTTL)
	}
	if cfg.FetchRetries != 4 {
		t.Errorf("FetchRetries = %d", cfg.FetchRetries)
	}
	if !cfg.Scoreboard.Render {
		t.Error("expected Scoreboard.Render true")
	}
}

func TestInvalidEnvValuesFallBack(t *testing.T) {
	t.Setenv(envCacheTTL, "soon")
	t.Setenv(envFetchRetries, "-1")
	t.Setenv(envRetryDelay, "0s")

	cfg := Load()
	if cfg.CacheTTL != defaultCacheTTL {
		t.Errorf("CacheTTL = %v, want default", cfg.CacheTTL)
	}
	if cfg.FetchRetries != defaultFetchRetries {
		t.Errorf("FetchRetries = %d, want default", cfg.FetchRetries)
	}
	if cfg.RetryDelay != defaultRetryDelay {
		t.Errorf("RetryDelay = %v, want default", cfg.RetryDelay)
	}
}
