package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hdprajwal/podcast-creator/config"
	"github.com/hdprajwal/podcast-creator/pkg/otel"
	"github.com/hdprajwal/podcast-creator/server"

	"github.com/joho/godotenv"
)

var version = "dev"

func main() {
	configFlag := flag.String("config", "config.yaml", "config file, the Gemini defaults are used when missing")
	addressFlag := flag.String("address", "", "listen address, overrides the config")

	flag.Parse()

	godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	telemetry, err := otel.Setup(ctx, "podcast-server", version)

	if err != nil {
		slog.Error("failed to set up telemetry", "error", err)
		os.Exit(1)
	}

	defer telemetry.Shutdown(context.Background())

	cfg, err := config.Load(*configFlag)

	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if *addressFlag != "" {
		cfg.Address = *addressFlag
	}

	s := server.New(cfg, telemetry.Metrics)

	if err := s.ListenAndServe(ctx); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
