// Package scan enumerates the regular files under a directory tree in a
// deterministic order.
package scan

import (
	"os"
	"path/filepath"

	"github.com/dmlevin/srctidy/pkg/errors"
)

// DefaultExcludeNames is the exclusion set used when callers pass nil:
// version-control metadata is never interesting to the maintenance tools.
var DefaultExcludeNames = []string{".git"}

// UniquePaths returns every regular file under root as a slash-separated path
// relative to root.
//
// Traversal is depth first with entries sorted per directory: all
// subdirectories of a directory are fully recursed before that directory's own
// files are appended. Entries whose base name is in excludeNames are dropped,
// as are symlinks, character devices, block devices, and anything else that is
// not a regular file. The resulting order is fully deterministic; callers
// snapshot it in tests.
//
// Any filesystem error aborts the whole enumeration; there is no partial
// result.
func UniquePaths(root string, excludeNames []string) ([]string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve root %s", root)
	}
	real, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrScan, "cannot resolve root %s", root)
	}

	if excludeNames == nil {
		excludeNames = DefaultExcludeNames
	}
	exclude := make(map[string]struct{}, len(excludeNames))
	for _, name := range excludeNames {
		exclude[name] = struct{}{}
	}

	w := &walker{root: real, exclude: exclude}
	if err := w.scanDir("."); err != nil {
		return nil, err
	}
	return w.paths, nil
}

type walker struct {
	root    string
	exclude map[string]struct{}
	paths   []string
}

type childEntry struct {
	relPath string
	mode    os.FileMode
}

func (w *walker) scanDir(dir string) error {
	full := w.root
	if dir != "." {
		full = filepath.Join(w.root, dir)
	}

	// os.ReadDir returns entries sorted by name.
	dirEntries, err := os.ReadDir(full)
	if err != nil {
		return errors.Wrapf(err, errors.ErrScan, "cannot list directory %s", dir)
	}

	children := make([]childEntry, 0, len(dirEntries))
	for _, entry := range dirEntries {
		if _, ok := w.exclude[entry.Name()]; ok {
			continue
		}
		relPath := entry.Name()
		if dir != "." {
			relPath = dir + "/" + entry.Name()
		}
		info, err := os.Lstat(filepath.Join(w.root, relPath))
		if err != nil {
			return errors.Wrapf(err, errors.ErrScan, "cannot stat %s", relPath)
		}
		children = append(children, childEntry{relPath: relPath, mode: info.Mode()})
	}

	// Subdirectories first, then this level's own files.
	for _, child := range children {
		if child.mode.IsDir() {
			if err := w.scanDir(child.relPath); err != nil {
				return err
			}
		}
	}
	for _, child := range children {
		if child.mode.IsDir() {
			continue
		}
		if child.mode&os.ModeSymlink != 0 {
			continue
		}
		if child.mode&os.ModeDevice != 0 || child.mode&os.ModeCharDevice != 0 {
			continue
		}
		if !child.mode.IsRegular() {
			continue
		}
		w.paths = append(w.paths, child.relPath)
	}

	return nil
}
