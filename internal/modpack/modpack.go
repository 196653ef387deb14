// Package modpack assembles converted assets into immutable modpacks and
// exports them as directory trees with a manifest. A modpack is sealed at
// construction; the exporter and any other consumer only ever see copies
// of its contents.
package modpack

import (
	"fmt"
	"sort"

	"github.com/brisvag/openage/internal/nyan"
)

// Modpack is a sealed bundle of converted files. Construct it with New;
// all accessors return copies.
type Modpack struct {
	name    string
	version string
	files   map[string][]byte
}

// New builds a modpack from the given files (relative path → content).
// The file map and its contents are deep-copied, so later mutation by the
// caller cannot reach into the modpack.
func New(name, version string, files map[string][]byte) (*Modpack, error) {
	if !nyan.ValidName(name) {
		return nil, fmt.Errorf("invalid modpack name %q", name)
	}
	if version == "" {
		return nil, fmt.Errorf("modpack %s: empty version", name)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("modpack %s: no files", name)
	}

	copied := make(map[string][]byte, len(files))
	for path, data := range files {
		if path == "" {
			return nil, fmt.Errorf("modpack %s: empty file path", name)
		}
		copied[path] = append([]byte(nil), data...)
	}

	return &Modpack{name: name, version: version, files: copied}, nil
}

// Name returns the modpack name.
func (m *Modpack) Name() string { return m.name }

// Version returns the modpack version string.
func (m *Modpack) Version() string { return m.version }

// Len returns the number of files in the modpack.
func (m *Modpack) Len() int { return len(m.files) }

// Size returns the total content size in bytes.
func (m *Modpack) Size() uint64 {
	var total uint64
	for _, data := range m.files {
		total += uint64(len(data))
	}
	return total
}

// Paths returns the file paths in the modpack, sorted.
func (m *Modpack) Paths() []string {
	paths := make([]string, 0, len(m.files))
	for path := range m.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// File returns a copy of one file's content.
func (m *Modpack) File(path string) ([]byte, bool) {
	data, ok := m.files[path]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), data...), true
}
