package sweep

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepRemovesNamedDirs(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "pkg", "__pycache__"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "pkg", "__pycache__", "m.pyc"), []byte{0}, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "pkg", "m.py"), []byte("x = 1\n"), 0o644))

	var out bytes.Buffer
	n, err := Sweep(root, []string{"__pycache__"}, false, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = os.Stat(filepath.Join(root, "pkg", "__pycache__"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(root, "pkg", "m.py"))
	assert.NoError(t, err)
}

func TestSweepDryRun(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "__pycache__"), 0o755))

	var out bytes.Buffer
	n, err := Sweep(root, []string{"__pycache__"}, true, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, out.String(), "__pycache__")

	_, err = os.Stat(filepath.Join(root, "__pycache__"))
	assert.NoError(t, err)
}
