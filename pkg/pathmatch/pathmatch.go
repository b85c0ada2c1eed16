// Package pathmatch classifies candidate paths against a configured pattern set.
//
// Patterns come in three forms, resolved against an optional root directory:
//
//   - "some/dir/"    trailing separator, matches everything under the directory
//   - "src/**/*.c"   contains a wildcard, expanded once at construction time
//   - "some/file"    literal path, matched by set membership
//
// Directory patterns degrade to string-prefix checks and glob/exact patterns to
// set lookups, so Matches never touches the filesystem. The one-time glob
// expansion pays for that.
package pathmatch

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dmlevin/srctidy/pkg/errors"
	"github.com/dmlevin/srctidy/pkg/logging"
)

// Matcher holds the compiled pattern set. It is immutable after construction
// and safe for repeated Matches queries.
type Matcher struct {
	root     string
	prefixes []string
	files    map[string]struct{}
}

// FromRoot builds a Matcher whose patterns are relative to root. The root is
// resolved to a canonical absolute path; glob matches are stored relative to it.
func FromRoot(root string, patterns []string) (*Matcher, error) {
	if root != "" {
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve root %s", root)
		}
		real, err := filepath.EvalSymlinks(abs)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve root %s", root)
		}
		root = real
	}

	m := &Matcher{
		root:  root,
		files: make(map[string]struct{}),
	}

	for _, pattern := range patterns {
		switch {
		case strings.HasSuffix(pattern, "/"):
			m.prefixes = append(m.prefixes, pattern)
		case strings.Contains(pattern, "*"):
			if err := m.expandGlob(pattern); err != nil {
				return nil, err
			}
		default:
			m.files[pattern] = struct{}{}
		}
	}

	return m, nil
}

// FromAbs builds a Matcher with no root; patterns are taken as self-contained
// (typically absolute) paths.
func FromAbs(patterns []string) (*Matcher, error) {
	return FromRoot("", patterns)
}

// expandGlob resolves a wildcard pattern into concrete file paths and folds
// them into the exact-path set.
//
// Symlinks found among the matches are not added; their paths are remembered
// and any later match sitting under one of them is dropped too, so a matched
// directory symlink does not double-count files already reachable through the
// real path. A pattern that only matches files beneath a symlink never records
// it, and alias paths come through. The check is a plain string-prefix test
// against the remembered link paths, not real-path equality. Downstream
// callers rely on that exact behavior.
func (m *Matcher) expandGlob(pattern string) error {
	logger := logging.GetLogger("pathmatch")

	full := pattern
	if m.root != "" {
		full = m.root + "/" + pattern
	}

	matches, err := doublestar.FilepathGlob(full)
	if err != nil {
		return errors.Wrapf(err, errors.ErrGlobExpand, "invalid glob pattern %s", pattern)
	}
	// FilepathGlob yields parents before their children; keep that order so
	// link prefixes are recorded before anything beneath them shows up.

	var linkPrefixes []string

	for _, match := range matches {
		info, err := os.Lstat(match)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat glob match %s", match)
		}

		mode := info.Mode()
		switch {
		case mode.IsDir():
			continue
		case mode&os.ModeSymlink != 0:
			logger.Debug().Str("path", match).Msg("skipping symlink in glob expansion")
			linkPrefixes = append(linkPrefixes, match)
			continue
		case mode&os.ModeDevice != 0 || mode&os.ModeCharDevice != 0:
			continue
		case !mode.IsRegular():
			continue
		}

		if hasLinkPrefix(match, linkPrefixes) {
			continue
		}

		if m.root != "" {
			rel, err := filepath.Rel(m.root, match)
			if err != nil {
				return errors.Wrapf(err, errors.ErrGlobExpand, "cannot relativize glob match %s", match)
			}
			m.files[rel] = struct{}{}
		} else {
			m.files[match] = struct{}{}
		}
	}

	return nil
}

func hasLinkPrefix(path string, linkPrefixes []string) bool {
	for _, link := range linkPrefixes {
		if strings.HasPrefix(path, link) {
			return true
		}
	}
	return false
}

// Matches reports whether path is covered by the pattern set. The path must
// use the same relative/absolute convention as the configured patterns.
func (m *Matcher) Matches(path string) bool {
	for _, prefix := range m.prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	_, ok := m.files[path]
	return ok
}

// HasPrefixes reports whether any directory-prefix patterns were configured.
func (m *Matcher) HasPrefixes() bool {
	return len(m.prefixes) > 0
}

// Files returns the exact-path set, post glob expansion, in sorted order.
func (m *Matcher) Files() []string {
	files := make([]string, 0, len(m.files))
	for f := range m.files {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}
