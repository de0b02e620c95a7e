package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/adrianliechti/avatar/config"
	"github.com/adrianliechti/avatar/pkg/otel"
	"github.com/adrianliechti/avatar/server"

	"github.com/joho/godotenv"
)

var version = "dev"

func main() {
	configFlag := flag.String("config", "", "config file")
	addressFlag := flag.String("address", "", "listen address")

	flag.Parse()

	// a missing .env file is fine
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := otel.Setup(ctx, "avatar", version); err != nil {
		slog.Error("failed to set up telemetry", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Parse(*configFlag)

	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if *addressFlag != "" {
		cfg.Address = *addressFlag
	}

	s, err := server.New(cfg)

	if err != nil {
		slog.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	if err := s.ListenAndServe(ctx); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
