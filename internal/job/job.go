package job

import (
	"fmt"
	"sort"

	"github.com/brisvag/openage/internal/nyan"
)

// Default values applied to optional job attributes.
const (
	DefaultPaletteID = 50500
	DefaultUpscale   = 1
	DefaultVersion   = "0.1.0"

	maxUpscale = 4
)

// Editions lists the supported source game editions.
var Editions = []string{"aoc", "aoe1"}

// AssetClasses lists the asset groups a modpack may include.
var AssetClasses = []string{"data", "graphics", "interface"}

// Conversion holds the run-wide settings of a job.
type Conversion struct {
	SourceDir string
	OutputDir string
	Edition   string
	PaletteID int
	Upscale   int
}

// Modpack describes one modpack to assemble from the converted assets.
type Modpack struct {
	Name    string
	Version string
	Include []string
}

// Job is a fully validated conversion job.
type Job struct {
	Conversion Conversion
	Modpacks   []*Modpack
}

func (j *Job) validate() error {
	c := &j.Conversion
	if c.SourceDir == "" {
		return fmt.Errorf("conversion: source_dir must not be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("conversion: output_dir must not be empty")
	}
	if !contains(Editions, c.Edition) {
		return fmt.Errorf("conversion: unknown edition %q, want one of %v", c.Edition, Editions)
	}
	if c.PaletteID < 0 {
		return fmt.Errorf("conversion: negative palette_id %d", c.PaletteID)
	}
	if c.Upscale < 1 || c.Upscale > maxUpscale {
		return fmt.Errorf("conversion: upscale %d out of range [1, %d]", c.Upscale, maxUpscale)
	}

	if len(j.Modpacks) == 0 {
		return fmt.Errorf("job defines no modpack blocks")
	}
	seen := make(map[string]struct{}, len(j.Modpacks))
	for _, mp := range j.Modpacks {
		if !nyan.ValidName(mp.Name) {
			return fmt.Errorf("modpack %q: name must be a valid identifier", mp.Name)
		}
		if _, dup := seen[mp.Name]; dup {
			return fmt.Errorf("modpack %q: defined twice", mp.Name)
		}
		seen[mp.Name] = struct{}{}

		if len(mp.Include) == 0 {
			return fmt.Errorf("modpack %q: include must list at least one asset class", mp.Name)
		}
		for _, class := range mp.Include {
			if !contains(AssetClasses, class) {
				return fmt.Errorf("modpack %q: unknown asset class %q, want one of %v", mp.Name, class, AssetClasses)
			}
		}
	}

	// Deterministic assembly order regardless of file discovery order.
	sort.Slice(j.Modpacks, func(a, b int) bool { return j.Modpacks[a].Name < j.Modpacks[b].Name })
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
