package stages

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/brisvag/openage/internal/ctxlog"
	"github.com/brisvag/openage/internal/drs"
	"github.com/brisvag/openage/internal/fsutil"
	"github.com/brisvag/openage/internal/media/palette"
	"github.com/brisvag/openage/internal/media/slp"
	"github.com/brisvag/openage/internal/names"
	"github.com/brisvag/openage/internal/pipeline"
)

const (
	graphicsArchive  = "graphics.drs"
	interfaceArchive = "interfac.drs"

	// renderPlayer selects the player-color block used for converted
	// sprites; packs recolor at load time in the target engine.
	renderPlayer = 1
)

// PreProcessor reads the legacy data and media files and fills the
// intermediate representation on the pipeline state.
type PreProcessor struct{}

func (p *PreProcessor) Name() string { return "pre-processor" }

func (p *PreProcessor) Run(ctx context.Context, st *pipeline.State) error {
	logger := ctxlog.FromContext(ctx)
	srcDir := st.Job.Conversion.SourceDir

	graphics, err := openArchive(srcDir, graphicsArchive)
	if err != nil {
		return err
	}
	ui, err := openArchive(srcDir, interfaceArchive)
	if err != nil {
		return err
	}

	palData, err := ui.File("bin", st.Job.Conversion.PaletteID)
	if err != nil {
		return fmt.Errorf("load palette %d: %w", st.Job.Conversion.PaletteID, err)
	}
	st.Palette, err = palette.Parse(palData)
	if err != nil {
		return fmt.Errorf("parse palette %d: %w", st.Job.Conversion.PaletteID, err)
	}

	st.Strings = decodeStrings(ui, st.Job.Conversion.PaletteID)

	if err := p.buildEntities(st, graphics); err != nil {
		return err
	}
	if err := p.decodeGraphics(ctx, st, graphics); err != nil {
		return err
	}

	logger.Info("Intermediate representation built.",
		"entities", len(st.Entities),
		"graphics", len(st.Graphics),
		"strings", len(st.Strings),
		"palette_colors", len(st.Palette),
	)
	return nil
}

func openArchive(dir, name string) (*drs.Archive, error) {
	path, err := fsutil.ResolveFold(dir, name)
	if err != nil {
		return nil, fmt.Errorf("locate %s: %w", name, err)
	}
	return drs.Load(path)
}

// buildEntities enumerates every line the registry knows and records
// whether the source archives carry a sprite for it.
func (p *PreProcessor) buildEntities(st *pipeline.State, graphics *drs.Archive) error {
	for _, cat := range names.Categories() {
		keys := st.Names.Keys(cat)
		sort.Ints(keys)
		for _, key := range keys {
			name, err := st.Names.Lookup(cat, key)
			if err != nil {
				return fmt.Errorf("resolve %s line %d: %w", cat, key, err)
			}
			st.Entities = append(st.Entities, &pipeline.Entity{
				LineID:     key,
				Category:   cat,
				Name:       name,
				HasGraphic: graphics.Has("slp", key),
			})
		}
	}
	return nil
}

// decodeGraphics renders every sprite resource in the graphics archive.
// Resources whose id resolves to a known line take that line's name;
// untranslated ids keep a generated name so the media survives conversion
// without ever fabricating a registry entry.
func (p *PreProcessor) decodeGraphics(ctx context.Context, st *pipeline.State, graphics *drs.Archive) error {
	logger := ctxlog.FromContext(ctx)

	for _, id := range graphics.IDs("slp") {
		data, err := graphics.File("slp", id)
		if err != nil {
			return fmt.Errorf("extract slp %d: %w", id, err)
		}
		sprite, err := slp.Parse(data)
		if err != nil {
			return fmt.Errorf("parse slp %d: %w", id, err)
		}

		name, err := resolveGraphicName(st.Names, id)
		if err != nil {
			return err
		}
		if name == "" {
			name = fmt.Sprintf("asset_%d", id)
			logger.Debug("No translated name for sprite, keeping generated name.", "id", id, "name", name)
		}

		g := &pipeline.Graphic{Name: name}
		for frame := range sprite.Frames {
			img, err := sprite.Render(frame, st.Palette, renderPlayer)
			if err != nil {
				return fmt.Errorf("render slp %d frame %d: %w", id, frame, err)
			}
			g.Frames = append(g.Frames, img)
		}
		st.Graphics = append(st.Graphics, g)
	}
	return nil
}

// resolveGraphicName finds the canonical name for a sprite id, trying each
// category table in order. A lookup miss is expected and yields an empty
// name; any other lookup failure is a real error.
func resolveGraphicName(reg *names.Registry, id int) (string, error) {
	for _, cat := range names.Categories() {
		name, err := reg.Lookup(cat, id)
		if err == nil {
			return name, nil
		}
		var notFound *names.NotFoundError
		if !errors.As(err, &notFound) {
			return "", err
		}
	}
	return "", nil
}

// decodeStrings extracts the text resources from the interface archive,
// decoding the legacy single-byte encoding. Resources containing NUL
// bytes are binary interface data, not text, and are skipped; so is the
// palette itself.
func decodeStrings(ui *drs.Archive, paletteID int) map[int]string {
	decoded := make(map[int]string)
	decoder := charmap.Windows1252.NewDecoder()

	for _, id := range ui.IDs("bin") {
		if id == paletteID {
			continue
		}
		data, err := ui.File("bin", id)
		if err != nil || len(data) == 0 || bytes.IndexByte(data, 0) >= 0 {
			continue
		}
		text, err := decoder.Bytes(data)
		if err != nil {
			continue
		}
		decoded[id] = strings.TrimRight(string(text), "\r\n")
	}
	return decoded
}
