package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/brisvag/openage/internal/ctxlog"
)

// Driver runs a fixed sequence of stages against one State.
type Driver struct {
	stages []Stage
}

// NewDriver builds a driver for the given stages, which execute in the
// order given.
func NewDriver(stages ...Stage) (*Driver, error) {
	if len(stages) == 0 {
		return nil, fmt.Errorf("driver needs at least one stage")
	}
	seen := make(map[string]struct{}, len(stages))
	for _, s := range stages {
		if s == nil {
			return nil, fmt.Errorf("nil stage")
		}
		if _, dup := seen[s.Name()]; dup {
			return nil, fmt.Errorf("stage %q registered twice", s.Name())
		}
		seen[s.Name()] = struct{}{}
	}
	return &Driver{stages: stages}, nil
}

// Run executes the stages sequentially. The first failing stage aborts the
// run and its error is wrapped with the stage name; a canceled context
// stops the run between stages.
func (d *Driver) Run(ctx context.Context, st *State) error {
	logger := ctxlog.FromContext(ctx)

	for i, stage := range d.stages {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("conversion aborted before stage %q: %w", stage.Name(), err)
		}

		logger.Info("Stage starting.", "stage", stage.Name(), "index", i+1, "total", len(d.stages))
		start := time.Now()

		if err := stage.Run(ctx, st); err != nil {
			return fmt.Errorf("stage %q: %w", stage.Name(), err)
		}

		logger.Info("Stage finished.", "stage", stage.Name(), "elapsed", time.Since(start).Round(time.Millisecond))
	}

	return nil
}
