package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFile(t *testing.T) {
	dir := t.TempDir()
	path := CreateFile(t, dir, "sub/a.txt", "hello")

	assert.Equal(t, filepath.Join(dir, "sub", "a.txt"), path)
	assert.Equal(t, "hello", ReadFile(t, path))
}

func TestCreateFileMode(t *testing.T) {
	dir := t.TempDir()
	path := CreateFileMode(t, dir, "run.sh", "#!/bin/sh\n", 0o755)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestCreateTree(t *testing.T) {
	dir := t.TempDir()
	CreateTree(t, dir, map[string]string{
		"a.txt":     "a",
		"sub/b.txt": "b",
	})

	assert.Equal(t, "a", ReadFile(t, filepath.Join(dir, "a.txt")))
	assert.Equal(t, "b", ReadFile(t, filepath.Join(dir, "sub", "b.txt")))
}

func TestCreateSymlink(t *testing.T) {
	dir := t.TempDir()
	target := CreateFile(t, dir, "target.txt", "x")
	link := CreateSymlink(t, dir, "link.txt", target)

	resolved, err := filepath.EvalSymlinks(link)
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(target)
	require.NoError(t, err)
	assert.Equal(t, want, resolved)
}
