package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/brisvag/openage/internal/ctxlog"
	"github.com/brisvag/openage/internal/job"
	"github.com/brisvag/openage/internal/names"
)

// App encapsulates one conversion run's dependencies and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	job     *job.Job
	names   *names.Registry
}

// NewApp constructs a fully initialized App, including its own isolated
// logger. Failing to load the job or build the registry is a fatal startup
// error and panics; the caller recovers it into a clean exit.
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	jb, err := job.Load(ctx, cfg.JobPath)
	if err != nil {
		panic(fmt.Errorf("failed to load job configuration: %w", err))
	}

	reg, err := names.New()
	if err != nil {
		// Broken built-in tables are a programmer error, not user input.
		panic(fmt.Errorf("failed to build name registry: %w", err))
	}
	logger.Debug("Name registry built.", "unit_lines", reg.Size(names.Unit), "building_lines", reg.Size(names.Building))

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		job:    jb,
		names:  reg,
	}
}

// Job returns the loaded job. This is primarily for testing.
func (a *App) Job() *job.Job {
	return a.job
}
