// Package app wires configuration, rules, the analyzer and the HTTP server
// together for the binaries.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dgallion1/clausewise/internal/api"
	"github.com/dgallion1/clausewise/internal/config"
	"github.com/dgallion1/clausewise/internal/pipeline"
	"github.com/dgallion1/clausewise/internal/rules"
)

// NewLogger returns a JSON logger at the configured level.
func NewLogger(cfg config.Config, w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
}

// NewAnalyzer builds an analyzer from cfg and its optional rules file.
func NewAnalyzer(cfg config.Config, log *slog.Logger) (*pipeline.Analyzer, error) {
	r, err := rules.Load(cfg.RulesFile)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	simplifier, err := r.Simplifier()
	if err != nil {
		return nil, fmt.Errorf("build simplifier: %w", err)
	}
	if cfg.RulesFile != "" {
		log.Info("loaded rules", "path", cfg.RulesFile,
			"document_types", len(r.DocumentTypes),
			"jargon_terms", len(r.Jargon),
		)
	}
	return pipeline.NewAnalyzer(cfg, pipeline.Components{
		Classifier: r.Classifier(),
		Simplifier: simplifier,
		Advisor:    r.Advisor(),
	}, log), nil
}

// Serve runs the HTTP API until ctx is done, then shuts down gracefully.
func Serve(ctx context.Context, cfg config.Config, a *pipeline.Analyzer, log *slog.Logger) error {
	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      api.NewServer(a, log, cfg),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting clausewise", "port", cfg.Port)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
