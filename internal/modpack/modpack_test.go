package modpack

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	files := map[string][]byte{"data/objects.nyan": []byte("x")}

	cases := []struct {
		name    string
		pack    string
		version string
		files   map[string][]byte
		wantErr bool
	}{
		{"valid", "aoc_base", "0.5.0", files, false},
		{"bad name", "aoc base", "0.5.0", files, true},
		{"empty version", "aoc_base", "", files, true},
		{"no files", "aoc_base", "0.5.0", nil, true},
		{"empty path", "aoc_base", "0.5.0", map[string][]byte{"": nil}, true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m, err := New(tc.pack, tc.version, tc.files)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.pack, m.Name())
			require.Equal(t, tc.version, m.Version())
		})
	}
}

func TestModpack_Immutability(t *testing.T) {
	t.Parallel()

	input := map[string][]byte{"data/objects.nyan": []byte("abc")}
	m, err := New("aoc_base", "0.5.0", input)
	require.NoError(t, err)

	// Mutating the input after construction changes nothing.
	input["data/objects.nyan"][0] = 'z'
	input["sneaky.txt"] = []byte("nope")

	require.Equal(t, 1, m.Len())
	got, ok := m.File("data/objects.nyan")
	require.True(t, ok)
	require.Equal(t, []byte("abc"), got)

	// Mutating a returned copy changes nothing either.
	got[0] = 'q'
	again, _ := m.File("data/objects.nyan")
	require.Equal(t, []byte("abc"), again)

	_, ok = m.File("absent")
	require.False(t, ok)
}

func TestModpack_Accounting(t *testing.T) {
	t.Parallel()

	m, err := New("aoc_base", "0.5.0", map[string][]byte{
		"b.nyan": []byte("12345"),
		"a.nyan": []byte("123"),
	})
	require.NoError(t, err)

	require.Equal(t, 2, m.Len())
	require.Equal(t, uint64(8), m.Size())
	require.Equal(t, []string{"a.nyan", "b.nyan"}, m.Paths())
}

func TestExporter_Export(t *testing.T) {
	t.Parallel()

	m, err := New("aoc_base", "0.5.0", map[string][]byte{
		"data/objects.nyan":    []byte("Castle(Building):\n    pass\n"),
		"graphics/Castle.png":  {0x89, 'P', 'N', 'G'},
		"graphics/Archer.png":  {0x89, 'P', 'N', 'G'},
		"interface/strings.txt": []byte("hello"),
	})
	require.NoError(t, err)

	root := t.TempDir()
	exp := &Exporter{Root: root}
	require.NoError(t, exp.Export(context.Background(), m))

	dir := filepath.Join(root, "aoc_base")
	content, err := os.ReadFile(filepath.Join(dir, "data", "objects.nyan"))
	require.NoError(t, err)
	require.Contains(t, string(content), "Castle(Building)")

	_, err = os.Stat(filepath.Join(dir, "graphics", "Castle.png"))
	require.NoError(t, err)

	manifest, err := os.ReadFile(filepath.Join(dir, ManifestName))
	require.NoError(t, err)
	text := string(manifest)
	require.Contains(t, text, `modpack "aoc_base"`)
	require.Contains(t, text, `version`)
	require.Contains(t, text, `"0.5.0"`)
	require.Contains(t, text, "graphics/Archer.png")
}
