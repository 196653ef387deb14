package app

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/brisvag/openage/internal/ctxlog"
	"github.com/brisvag/openage/internal/modpack"
	"github.com/brisvag/openage/internal/pipeline"
	"github.com/brisvag/openage/internal/stages"
)

// Run executes the conversion: the three pipeline stages in strict order,
// then one export per assembled modpack.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	driver, err := pipeline.NewDriver(
		&stages.PreProcessor{},
		&stages.Processor{Workers: a.config.Workers},
		&stages.PostProcessor{},
	)
	if err != nil {
		return fmt.Errorf("failed to build pipeline: %w", err)
	}

	st := &pipeline.State{
		Job:   a.job,
		Names: a.names,
	}

	a.logger.Info("Starting conversion.",
		"source_dir", a.job.Conversion.SourceDir,
		"edition", a.job.Conversion.Edition,
		"workers", a.config.Workers,
	)
	if err := driver.Run(ctx, st); err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	exporter := &modpack.Exporter{Root: a.job.Conversion.OutputDir}
	var total uint64
	for _, m := range st.Modpacks {
		if err := exporter.Export(ctx, m); err != nil {
			return fmt.Errorf("export modpack %s: %w", m.Name(), err)
		}
		total += m.Size()
	}

	a.logger.Info("Conversion finished.",
		"modpacks", len(st.Modpacks),
		"total_size", humanize.Bytes(total),
		"output_dir", a.job.Conversion.OutputDir,
	)
	return nil
}
