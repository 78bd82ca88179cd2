package path

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "internal", "usecase", "swipe")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "migrations"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("PORT=8080\n"), 0o644))

	dir, err := FindRoot(nested, "migrations", true)
	require.NoError(t, err)
	assert.Equal(t, root, dir)

	dir, err = FindRoot(nested, ".env", false)
	require.NoError(t, err)
	assert.Equal(t, root, dir)

	_, err = FindRoot(nested, "no_such_marker_dir", true)
	assert.Error(t, err)
}
