package modpack

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/brisvag/openage/internal/ctxlog"
)

// ManifestName is the file written next to a modpack's content describing
// what the pack contains.
const ManifestName = "manifest.hcl"

// Exporter writes modpacks under a root output directory, one
// subdirectory per pack.
type Exporter struct {
	Root string
}

// Export writes the modpack's files and manifest to Root/<name>/.
func (e *Exporter) Export(ctx context.Context, m *Modpack) error {
	logger := ctxlog.FromContext(ctx)

	dir := filepath.Join(e.Root, m.Name())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create modpack dir: %w", err)
	}

	for _, path := range m.Paths() {
		data, _ := m.File(path)
		dest := filepath.Join(dir, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("create dir for %s: %w", path, err)
		}
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	manifest := e.renderManifest(m)
	if err := os.WriteFile(filepath.Join(dir, ManifestName), manifest, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	logger.Info("Modpack exported.",
		"modpack", m.Name(),
		"version", m.Version(),
		"files", m.Len(),
		"size", humanize.Bytes(m.Size()),
		"dir", dir,
	)
	return nil
}

// renderManifest emits the manifest in the same HCL dialect the job files
// use, so a pack can be inspected with the same tooling that produced it.
func (e *Exporter) renderManifest(m *Modpack) []byte {
	f := hclwrite.NewEmptyFile()
	block := f.Body().AppendNewBlock("modpack", []string{m.Name()})
	body := block.Body()
	body.SetAttributeValue("version", cty.StringVal(m.Version()))
	body.SetAttributeValue("file_count", cty.NumberIntVal(int64(m.Len())))
	body.SetAttributeValue("size_bytes", cty.NumberIntVal(int64(m.Size())))

	paths := m.Paths()
	vals := make([]cty.Value, len(paths))
	for i, p := range paths {
		vals[i] = cty.StringVal(p)
	}
	if len(vals) == 0 {
		body.SetAttributeValue("files", cty.ListValEmpty(cty.String))
	} else {
		body.SetAttributeValue("files", cty.ListVal(vals))
	}

	return f.Bytes()
}
