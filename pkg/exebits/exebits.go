// Package exebits decides whether a file legitimately carries executable
// permission bits. Wrong bits usually come from checkouts made on filesystems
// without a permission model.
package exebits

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dmlevin/srctidy/pkg/errors"
)

// ExePerms are the owner/group/other execute bits.
const ExePerms os.FileMode = 0o111

// Class is the verdict for a single executable file.
type Class int

const (
	// Keep means the extension is a known executable kind.
	Keep Class = iota
	// Clear means the file is a known non-executable kind and the bits
	// should be removed.
	Clear
	// UnknownExt means the extension is not in any table; the user has to
	// extend the configuration.
	UnknownExt
	// NoExt means the file has no extension and no name-table entry.
	NoExt
)

// Tables holds the merged classification sets from all configured groups.
type Tables struct {
	nonExeSuffixes map[string]struct{}
	nonExeNames    map[string]struct{}
	exeSuffixes    map[string]struct{}
}

// NewTables builds lookup tables from the merged group lists. Suffixes are
// stored lowercase.
func NewTables(nonExeSuffixes, nonExeNames, exeSuffixes []string) *Tables {
	t := &Tables{
		nonExeSuffixes: make(map[string]struct{}, len(nonExeSuffixes)),
		nonExeNames:    make(map[string]struct{}, len(nonExeNames)),
		exeSuffixes:    make(map[string]struct{}, len(exeSuffixes)),
	}
	for _, s := range nonExeSuffixes {
		t.nonExeSuffixes[strings.ToLower(s)] = struct{}{}
	}
	for _, n := range nonExeNames {
		t.nonExeNames[n] = struct{}{}
	}
	for _, s := range exeSuffixes {
		t.exeSuffixes[strings.ToLower(s)] = struct{}{}
	}
	return t
}

// Classify decides what to do with the executable bits of path.
// A trailing ".in" is peeled off first so generated-input files classify by
// their real extension.
func (t *Tables) Classify(path string) Class {
	name := filepath.Base(path)
	ext := filepath.Ext(name)

	if ext == ".in" {
		name = strings.TrimSuffix(name, ".in")
		ext = filepath.Ext(name)
	}

	if _, ok := t.nonExeNames[name]; ok {
		return Clear
	}

	if ext == "" {
		return NoExt
	}
	suffix := strings.ToLower(ext[1:])
	if _, ok := t.exeSuffixes[suffix]; ok {
		return Keep
	}
	if _, ok := t.nonExeSuffixes[suffix]; ok {
		return Clear
	}
	return UnknownExt
}

// HasExeBits reports whether any execute bit is set.
func HasExeBits(mode os.FileMode) bool {
	return mode.Perm()&ExePerms != 0
}

// ClearExeBits removes all execute bits from path, keeping the rest of mode.
func ClearExeBits(path string, mode os.FileMode) error {
	if err := os.Chmod(path, mode.Perm()&^ExePerms); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot chmod %s", path)
	}
	return nil
}

// ReferenceHasExeBits looks up the same relative path under a reference tree
// and reports whether that copy is executable. The second return value is
// false when the reference copy does not exist as a regular file.
func ReferenceHasExeBits(refRoot, relPath string) (hasExe, found bool) {
	info, err := os.Stat(filepath.Join(refRoot, relPath))
	if err != nil || !info.Mode().IsRegular() {
		return false, false
	}
	return HasExeBits(info.Mode()), true
}
