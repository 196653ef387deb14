package job

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/brisvag/openage/internal/ctxlog"
	"github.com/brisvag/openage/internal/fsutil"
)

// hclJobFile mirrors the top-level structure of a job file for decoding.
type hclJobFile struct {
	Conversion *hclConversion `hcl:"conversion,block"`
	Modpacks   []*hclModpack  `hcl:"modpack,block"`
}

type hclConversion struct {
	SourceDir string `hcl:"source_dir"`
	OutputDir string `hcl:"output_dir"`
	Edition   string `hcl:"edition,optional"`
	PaletteID *int   `hcl:"palette_id,optional"`
	Upscale   *int   `hcl:"upscale,optional"`
}

type hclModpack struct {
	Name    string   `hcl:"name,label"`
	Version string   `hcl:"version,optional"`
	Include []string `hcl:"include"`
}

// Load reads a job from a single .hcl file or from every .hcl file in a
// directory, merges the blocks, applies defaults and validates the result.
func Load(ctx context.Context, path string) (*Job, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := findJobFiles(path)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl job files found at %s", path)
	}
	logger.Debug("Found job files to load.", "files", files)

	evalCtx := buildEvalContext()
	parser := hclparse.NewParser()

	var (
		jb             Job
		conversionFrom string
	)
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse job file %s: %w", file, diags)
		}

		var parsed hclJobFile
		if diags := gohcl.DecodeBody(hclFile.Body, evalCtx, &parsed); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode job file %s: %w", file, diags)
		}

		if parsed.Conversion != nil {
			if conversionFrom != "" {
				return nil, fmt.Errorf("conversion block defined in both %s and %s", conversionFrom, file)
			}
			conversionFrom = file
			jb.Conversion = applyConversionDefaults(parsed.Conversion)
		}
		for _, mp := range parsed.Modpacks {
			version := mp.Version
			if version == "" {
				version = DefaultVersion
			}
			jb.Modpacks = append(jb.Modpacks, &Modpack{
				Name:    mp.Name,
				Version: version,
				Include: mp.Include,
			})
		}
		logger.Debug("Loaded job file.", "file", file, "modpacks", len(parsed.Modpacks))
	}

	if conversionFrom == "" {
		return nil, fmt.Errorf("no conversion block found in %s", path)
	}
	if err := jb.validate(); err != nil {
		return nil, err
	}

	logger.Info("Job loaded.",
		"source_dir", jb.Conversion.SourceDir,
		"edition", jb.Conversion.Edition,
		"modpacks", len(jb.Modpacks),
	)
	return &jb, nil
}

func applyConversionDefaults(raw *hclConversion) Conversion {
	c := Conversion{
		SourceDir: raw.SourceDir,
		OutputDir: raw.OutputDir,
		Edition:   raw.Edition,
		PaletteID: DefaultPaletteID,
		Upscale:   DefaultUpscale,
	}
	if c.Edition == "" {
		c.Edition = "aoc"
	}
	if raw.PaletteID != nil {
		c.PaletteID = *raw.PaletteID
	}
	if raw.Upscale != nil {
		c.Upscale = *raw.Upscale
	}
	return c
}

func findJobFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	return fsutil.FindFilesByExtension(path, ".hcl")
}

// buildEvalContext exposes the process environment to job expressions, so
// install paths do not need to be hardcoded in checked-in job files:
//
//	source_dir = env.AOC_DIR
func buildEvalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			vars[k] = cty.StringVal(v)
		}
	}

	env := cty.EmptyObjectVal
	if len(vars) > 0 {
		env = cty.ObjectVal(vars)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
	}
}
