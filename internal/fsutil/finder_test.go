package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested", "deep"), 0755))
	for _, name := range []string{"a.hcl", "b.txt", "nested/c.hcl", "nested/deep/d.hcl"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	files, err := FindFilesByExtension(dir, ".hcl")

	require.NoError(t, err)
	require.Len(t, files, 3)
	for _, f := range files {
		assert.Equal(t, ".hcl", filepath.Ext(f))
	}
}

func TestFindFilesByExtension_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "missing"), ".hcl")

	assert.Error(t, err)
}
