package srctidy

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "srctidy version")
}

func TestNoCommandFails(t *testing.T) {
	_, err := runCommand(t)
	require.Error(t, err)
}

func TestUnknownCommandFails(t *testing.T) {
	_, err := runCommand(t, "frobnicate")
	require.Error(t, err)
}

func TestStripAllCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.py")
	require.NoError(t, os.WriteFile(path, []byte("# header\n# more\ncode = 1\n"), 0o644))

	out, err := runCommand(t, "strip", "--all", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Stripped: 1")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "code = 1\n", string(data))
}

func TestSweepCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "__pycache__"), 0o755))

	out, err := runCommand(t, "sweep", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Removed: 1")
}
