package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordingStage appends its name to a shared log when run.
type recordingStage struct {
	name string
	log  *[]string
	err  error
}

func (s *recordingStage) Name() string { return s.name }

func (s *recordingStage) Run(_ context.Context, _ *State) error {
	*s.log = append(*s.log, s.name)
	return s.err
}

func TestDriver_RunsStagesInOrder(t *testing.T) {
	t.Parallel()

	var log []string
	d, err := NewDriver(
		&recordingStage{name: "pre-processor", log: &log},
		&recordingStage{name: "processor", log: &log},
		&recordingStage{name: "post-processor", log: &log},
	)
	require.NoError(t, err)

	require.NoError(t, d.Run(context.Background(), &State{}))
	require.Equal(t, []string{"pre-processor", "processor", "post-processor"}, log)
}

func TestDriver_FailureAbortsRun(t *testing.T) {
	t.Parallel()

	var log []string
	boom := errors.New("boom")
	d, err := NewDriver(
		&recordingStage{name: "pre-processor", log: &log},
		&recordingStage{name: "processor", log: &log, err: boom},
		&recordingStage{name: "post-processor", log: &log},
	)
	require.NoError(t, err)

	runErr := d.Run(context.Background(), &State{})
	require.ErrorIs(t, runErr, boom)
	require.ErrorContains(t, runErr, `stage "processor"`)
	require.Equal(t, []string{"pre-processor", "processor"}, log,
		"a later stage never starts after a failure")
}

func TestDriver_ContextCancellation(t *testing.T) {
	t.Parallel()

	var log []string
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d, err := NewDriver(
		&recordingStage{name: "pre-processor", log: &log},
		&recordingStage{name: "processor", log: &log},
	)
	require.NoError(t, err)

	runErr := d.Run(ctx, &State{})
	require.ErrorIs(t, runErr, context.Canceled)
	require.Empty(t, log)
}

func TestNewDriver_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewDriver()
	require.Error(t, err)

	_, err = NewDriver(nil)
	require.Error(t, err)

	var log []string
	_, err = NewDriver(
		&recordingStage{name: "processor", log: &log},
		&recordingStage{name: "processor", log: &log},
	)
	require.ErrorContains(t, err, "registered twice")
}
