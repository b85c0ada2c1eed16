// Package testutil provides filesystem fixture helpers for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateFile writes a file with the given content under dir, creating parent
// directories as needed, and returns its full path.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// CreateFileMode is CreateFile with an explicit permission mode.
func CreateFileMode(t *testing.T, dir, name, content string, mode os.FileMode) string {
	t.Helper()

	path := CreateFile(t, dir, name, content)
	if err := os.Chmod(path, mode); err != nil {
		t.Fatalf("failed to chmod %s: %v", name, err)
	}
	return path
}

// CreateDir creates a directory (and parents) under dir and returns its path.
func CreateDir(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", name, err)
	}
	return path
}

// CreateSymlink creates a symlink at dir/name pointing to target.
func CreateSymlink(t *testing.T, dir, name, target string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", name, err)
	}
	if err := os.Symlink(target, path); err != nil {
		t.Fatalf("failed to create symlink %s: %v", name, err)
	}
	return path
}

// CreateTree writes a whole file tree under dir. Map keys are relative paths,
// values are file contents.
func CreateTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		CreateFile(t, dir, name, content)
	}
}

// ReadFile reads a file and fails the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
