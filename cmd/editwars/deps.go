package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/groverneev/editwars/internal/application/handlers"
	"github.com/groverneev/editwars/internal/domain/ports"
	"github.com/groverneev/editwars/internal/domain/services"
	"github.com/groverneev/editwars/internal/infrastructure/config"
	"github.com/groverneev/editwars/internal/infrastructure/historydb/sqlite"
	"github.com/groverneev/editwars/internal/infrastructure/wikipedia"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed; services and the API client are internal.
type Deps struct {
	Config           *config.Config
	AnalyzeHandler   *handlers.AnalyzeHandler
	ContestedHandler *handlers.ContestedHandler
}

// withDeps loads config and builds dependencies, then calls the provided
// function. It handles cleanup automatically.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	return withStore(ctx, func(d *Deps, _ ports.HistoryStore) error {
		return fn(d)
	})
}

// withStore additionally exposes the history cache for commands that manage
// it directly.
func withStore(ctx context.Context, fn func(*Deps, ports.HistoryStore) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	client, err := wikipedia.NewClient(cfg.Wikipedia)
	if err != nil {
		return fmt.Errorf("creating wikipedia client: %w", err)
	}

	// The cache directory may not exist before init; analysis still works.
	if err := os.MkdirAll(filepath.Dir(cfg.History.Path), 0755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	store, err := sqlite.NewRepository(cfg.History)
	if err != nil {
		return fmt.Errorf("creating history cache: %w", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensuring cache schema: %w", err)
	}

	service := services.NewAnalysisService(detectionConfig(cfg))

	deps := &Deps{
		Config:           cfg,
		AnalyzeHandler:   handlers.NewAnalyzeHandler(service, client, store),
		ContestedHandler: handlers.NewContestedHandler(service, client),
	}

	return fn(deps, store)
}

// detectionConfig maps the config file parameters onto the engine
// configuration. Zero values fall back to the engine defaults.
func detectionConfig(cfg *config.Config) services.DetectionConfig {
	return services.DetectionConfig{
		WindowHours:         cfg.Detection.WindowHours,
		MinReverts:          cfg.Detection.MinReverts,
		CommentIndicators:   cfg.Detection.CommentIndicators,
		SizeSimilarityRatio: cfg.Detection.SizeSimilarityRatio,
		SelfRevertDelta:     cfg.Detection.SelfRevertDelta,
		RequireSizeMatch:    cfg.Detection.RequireSizeMatch,
		SlidingWindow:       cfg.Detection.SlidingWindow,
	}
}
