package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgallion1/clausewise/internal/app"
	"github.com/dgallion1/clausewise/internal/config"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("load configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log = app.NewLogger(cfg, os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	analyzer, err := app.NewAnalyzer(cfg, log)
	if err != nil {
		log.Error("build analyzer", "error", err)
		os.Exit(1)
	}

	if err := app.Serve(ctx, cfg, analyzer, log); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
