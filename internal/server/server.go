// Package server wires configuration, the data source, the game cache,
// the stats gateway, and the chat engine into a running HTTP service.
package server

import (
	"context"
	"errors"
	"log/slog"
	nethttp "net/http"

	"sportsdesk/internal/cache"
	"sportsdesk/internal/chat"
	"sportsdesk/internal/config"
	httpserver "sportsdesk/internal/http"
	"sportsdesk/internal/logging"
	"sportsdesk/internal/metrics"
	"sportsdesk/internal/providers"
	"sportsdesk/internal/stats"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	source        providers.Source
	cache         *cache.GameCache
	gateway       *stats.Gateway
	engine        *chat.Engine
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with default source wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithSource(cfg, logger, nil)
}

func newServerWithSource(cfg config.Config, logger *slog.Logger, source providers.Source) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	if source == nil {
		source = buildSource(cfg, logger)
	}

	gameCache := cache.New(source, logger, recorder, cache.Options{
		TTL:        cfg.CacheTTL,
		Retries:    cfg.FetchRetries,
		RetryDelay: cfg.RetryDelay,
	})
	gateway := stats.NewGateway(source, logger)
	engine := chat.NewEngine(gameCache, gateway, chat.Options{
		Logger:  logger,
		Metrics: recorder,
	})

	handler := httpserver.NewHandler(gameCache, gateway, engine, logger)
	router := httpserver.NewRouter(handler)
	wrapped := httpserver.LoggingMiddleware(logger, recorder, router)

	srv := &nethttp.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		source:        source,
		cache:         gameCache,
		gateway:       gateway,
		engine:        engine,
		httpServer:    netHTTPServer{srv: srv},
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// Run starts the HTTP and metrics servers, primes the cache in the
// background, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	go s.primeCache(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

// primeCache warms every sport once so the readiness probe turns green
// without waiting for the first user request.
func (s *Server) primeCache(ctx context.Context) {
	games, err := s.cache.AllGames(ctx)
	if err != nil {
		logging.Warn(s.logger, "cache priming failed", "error", err)
		return
	}
	logging.Info(s.logger, "cache primed", slog.Int(logging.FieldCount, len(games)))
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	// Rendered scoreboard fetchers own a browser that must be released.
	if c, ok := s.source.(interface{ Close() }); ok {
		c.Close()
	}

	logging.Info(s.logger, "shutdown complete")
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onExit func(error)) {
	go func() {
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			logging.Error(logger, name+" server failed", err)
			if onExit != nil {
				onExit(err)
			}
		}
	}()
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "telemetry setup failed, continuing with in-memory metrics", "error", err)
		return metrics.NewRecorder(), nil, nil
	}
	if handler == nil {
		return rec, nil, shutdown
	}

	mux := nethttp.NewServeMux()
	mux.Handle("/metrics", handler)
	srv := &nethttp.Server{
		Addr:    ":" + cfg.Metrics.Port,
		Handler: mux,
	}
	return rec, netHTTPServer{srv: srv}, shutdown
}
