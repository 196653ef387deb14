package stages

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/brisvag/openage/internal/ctxlog"
	"github.com/brisvag/openage/internal/modpack"
	"github.com/brisvag/openage/internal/pipeline"
)

// PostProcessor assembles the processor's output into immutable modpacks,
// one per modpack block in the job. The packs are appended to the state;
// exporting them is the driver owner's concern.
type PostProcessor struct{}

func (p *PostProcessor) Name() string { return "post-processor" }

func (p *PostProcessor) Run(ctx context.Context, st *pipeline.State) error {
	logger := ctxlog.FromContext(ctx)

	for _, def := range st.Job.Modpacks {
		files := make(map[string][]byte)
		for _, class := range def.Include {
			n := collectClass(st, class, files)
			if n == 0 {
				logger.Warn("Asset class is empty for this conversion.", "modpack", def.Name, "class", class)
			}
		}
		if len(files) == 0 {
			return fmt.Errorf("modpack %s: no convertible assets for classes %v", def.Name, def.Include)
		}

		m, err := modpack.New(def.Name, def.Version, files)
		if err != nil {
			return fmt.Errorf("assemble modpack %s: %w", def.Name, err)
		}
		st.Modpacks = append(st.Modpacks, m)
		logger.Info("Modpack assembled.", "modpack", def.Name, "files", m.Len())
	}

	return nil
}

// collectClass copies one asset class into the file map and returns how
// many files it contributed.
func collectClass(st *pipeline.State, class string, files map[string][]byte) int {
	switch class {
	case "data":
		if len(st.Objects) == 0 {
			return 0
		}
		files["data/objects.nyan"] = renderObjects(st)
		return 1
	case "graphics":
		for path, data := range st.MediaFiles {
			files[path] = data
		}
		return len(st.MediaFiles)
	case "interface":
		if len(st.Strings) == 0 {
			return 0
		}
		files["interface/strings.txt"] = renderStrings(st)
		return 1
	default:
		// Job validation rejects unknown classes before any stage runs.
		return 0
	}
}

func renderObjects(st *pipeline.State) []byte {
	var b strings.Builder
	for i, obj := range st.Objects {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(obj.String())
	}
	return []byte(b.String())
}

func renderStrings(st *pipeline.State) []byte {
	ids := make([]int, 0, len(st.Strings))
	for id := range st.Strings {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var b strings.Builder
	for _, id := range ids {
		fmt.Fprintf(&b, "%d: %s\n", id, st.Strings[id])
	}
	return []byte(b.String())
}
