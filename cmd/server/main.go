package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"sportsdesk/internal/config"
	"sportsdesk/internal/logging"
	"sportsdesk/internal/server"
)

const appVersion = "dev"

func main() {
	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "sportsdesk",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
