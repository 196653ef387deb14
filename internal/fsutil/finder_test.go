package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	for _, name := range []string{"a.hcl", "b.txt", filepath.Join("nested", "c.hcl")} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}

	files, err := FindFilesByExtension(dir, ".hcl")
	require.NoError(t, err)
	require.Len(t, files, 2)
	for _, f := range files {
		require.Equal(t, ".hcl", filepath.Ext(f))
	}

	_, err = FindFilesByExtension(filepath.Join(dir, "absent"), ".hcl")
	require.Error(t, err)
}

func TestResolveFold(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "GRAPHICS.DRS"), nil, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "interfac.drs"), nil, 0o600))

	path, err := ResolveFold(dir, "graphics.drs")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "GRAPHICS.DRS"), path)

	path, err = ResolveFold(dir, "interfac.drs")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "interfac.drs"), path)

	_, err = ResolveFold(dir, "sounds.drs")
	require.Error(t, err)
}
