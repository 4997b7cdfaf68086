package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/jobgridgo/internal/config"
	"github.com/vk/jobgridgo/internal/ctxlog"
)

// App encapsulates the generator's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    *Config
	sweep  config.Sweep
}

// NewApp is the constructor for the generator. It returns a fully
// initialized App instance, including its own isolated logger and the
// resolved sweep model.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Start from the compiled-in production sweep and overlay any
	// user-provided definition files on top of it.
	sweep := config.Default()
	if appConfig.SweepPath != "" {
		loaded, err := loader.Load(ctx, sweep, appConfig.SweepPath)
		if err != nil {
			// A failure to load the sweep definition is a fatal startup error.
			panic(fmt.Errorf("failed to load sweep definition: %w", err))
		}
		sweep = loaded
		logger.Debug("Sweep definition loaded.", "path", appConfig.SweepPath)
	}
	if appConfig.OutputPath != "" {
		sweep.OutputPath = appConfig.OutputPath
	}
	logger.Debug("Sweep model resolved.",
		"sizes", len(sweep.Sizes), "samples", sweep.Samples, "output", sweep.OutputPath)

	return &App{
		outW:   outW,
		logger: logger,
		cfg:    appConfig,
		sweep:  sweep,
	}
}

// Sweep returns the resolved sweep model. This is primarily for testing.
func (a *App) Sweep() config.Sweep {
	return a.sweep
}
