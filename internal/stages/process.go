package stages

import (
	"context"
	"fmt"
	"image"
	"sync"

	"github.com/remeh/sizedwaitgroup"

	"github.com/brisvag/openage/internal/ctxlog"
	"github.com/brisvag/openage/internal/media"
	"github.com/brisvag/openage/internal/names"
	"github.com/brisvag/openage/internal/nyan"
	"github.com/brisvag/openage/internal/pipeline"
)

// Processor translates the intermediate representation into target-format
// object definitions and PNG media. Frame encoding fans out over a bounded
// worker group; Workers caps the number of frames in flight.
type Processor struct {
	Workers int
}

func (p *Processor) Name() string { return "processor" }

func (p *Processor) Run(ctx context.Context, st *pipeline.State) error {
	logger := ctxlog.FromContext(ctx)

	if err := p.buildObjects(st); err != nil {
		return err
	}
	if err := p.encodeMedia(ctx, st); err != nil {
		return err
	}

	logger.Info("Target-format output produced.",
		"objects", len(st.Objects),
		"media_files", len(st.MediaFiles),
	)
	return nil
}

// buildObjects emits one named object per entity. Entities arrive from the
// pre-processor sorted by category and line id, so object order is stable.
func (p *Processor) buildObjects(st *pipeline.State) error {
	for _, ent := range st.Entities {
		obj, err := nyan.NewObject(ent.Name, parentFor(ent.Category))
		if err != nil {
			return fmt.Errorf("entity %s line %d: %w", ent.Category, ent.LineID, err)
		}
		if err := obj.Set("line_id", ent.LineID); err != nil {
			return err
		}
		if err := obj.Set("category", ent.Category.String()); err != nil {
			return err
		}
		if ent.HasGraphic {
			if err := obj.Set("sprite", fmt.Sprintf("graphics/%s_0.png", ent.Name)); err != nil {
				return err
			}
		}
		st.Objects = append(st.Objects, obj)
	}
	return nil
}

// encodeMedia upscales and PNG-encodes every decoded frame concurrently.
func (p *Processor) encodeMedia(ctx context.Context, st *pipeline.State) error {
	workers := p.Workers
	if workers < 1 {
		workers = 1
	}

	st.MediaFiles = make(map[string][]byte)

	var (
		mu       sync.Mutex
		firstErr error
	)
	swg := sizedwaitgroup.New(workers)

	for _, g := range st.Graphics {
		for i, frame := range g.Frames {
			if err := ctx.Err(); err != nil {
				swg.Wait()
				return err
			}

			swg.Add()
			go func(name string, idx int, img *image.RGBA) {
				defer swg.Done()

				scaled, err := media.Upscale(img, st.Job.Conversion.Upscale)
				if err == nil {
					var data []byte
					data, err = media.EncodePNG(scaled)
					if err == nil {
						mu.Lock()
						st.MediaFiles[fmt.Sprintf("graphics/%s_%d.png", name, idx)] = data
						mu.Unlock()
						return
					}
				}

				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("encode %s frame %d: %w", name, idx, err)
				}
				mu.Unlock()
			}(g.Name, i, frame)
		}
	}
	swg.Wait()

	return firstErr
}

// parentFor maps a line category to its object parent in the target
// object hierarchy.
func parentFor(cat names.Category) string {
	if cat == names.Building {
		return "Building"
	}
	return "Unit"
}
