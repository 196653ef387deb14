// Package pipeline defines the conversion pipeline contract: a strictly
// ordered sequence of stages sharing one State. A conversion always runs
// pre-processor, processor, post-processor in that order; a stage never
// starts before its predecessor has completed, and the first stage error
// aborts the run for the whole asset set.
package pipeline

import (
	"context"
	"image"
	"image/color"

	"github.com/brisvag/openage/internal/job"
	"github.com/brisvag/openage/internal/modpack"
	"github.com/brisvag/openage/internal/names"
	"github.com/brisvag/openage/internal/nyan"
)

// Stage is one phase of the conversion. Run reads its inputs from the
// shared State and writes its outputs back before returning; the driver
// guarantees no later stage observes partial output.
type Stage interface {
	Name() string
	Run(ctx context.Context, st *State) error
}

// Entity is one convertible line in the intermediate representation: a
// legacy line id resolved to its canonical object name.
type Entity struct {
	LineID   int
	Category names.Category
	Name     string

	// HasGraphic records whether a sprite resource for this line was found
	// in the source archives.
	HasGraphic bool
}

// Graphic is a decoded sprite awaiting media encoding.
type Graphic struct {
	Name   string
	Frames []*image.RGBA
}

// State is the data handed from stage to stage. The pre-processor fills
// the intermediate fields, the processor the target-format fields, and the
// post-processor the modpacks.
type State struct {
	Job   *job.Job
	Names *names.Registry

	// Intermediate representation, produced by the pre-processor.
	Palette  color.Palette
	Strings  map[int]string
	Entities []*Entity
	Graphics []*Graphic

	// Target-format output, produced by the processor.
	Objects    []*nyan.Object
	MediaFiles map[string][]byte

	// Assembled modpacks, produced by the post-processor.
	Modpacks []*modpack.Modpack
}
