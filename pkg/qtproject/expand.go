package qtproject

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// expandUser replaces a leading "~" with the current home directory.
func expandUser(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return home + path[1:]
		}
	}
	return path
}

// realPath resolves symlinks when the path exists and falls back to a plain
// lexical cleanup when it does not.
func realPath(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return filepath.Clean(abs)
}

// expandMappings substitutes every "$key" from the local mappings. A leftover
// "$" means an unconfigured mapping: the caller gets the unsubstituted input
// back along with false.
func (m *manifest) expandMappings(path string) (string, bool) {
	mapped := path
	for _, key := range sortedKeys(m.mappings) {
		mapped = strings.ReplaceAll(mapped, "$"+key, m.mappings[key])
	}
	if strings.Contains(mapped, "$") {
		return path, false
	}
	return mapped, true
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// expandPathNorm expands "~" and local mappings, then normalizes: absolute
// paths are resolved as-is, relative ones are resolved against rootDir and
// kept relative when they stay inside it.
func (g *generator) expandPathNorm(path string) string {
	expanded := expandUser(path)
	mapped, ok := g.m.expandMappings(expanded)
	if !ok {
		g.log.Warn().Str("path", path).Msg("path has unconfigured mapping, check your local config")
		return expanded
	}
	if filepath.IsAbs(mapped) {
		return realPath(mapped)
	}

	resolved := realPath(filepath.Join(g.rootDir, mapped))
	rel, err := filepath.Rel(g.rootDir, resolved)
	if err != nil || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || rel == ".." {
		return resolved
	}
	return rel
}

// expandPathAbs is expandPathNorm with relative results rebased onto rootDir.
func (g *generator) expandPathAbs(path string) string {
	expanded := g.expandPathNorm(path)
	if filepath.IsAbs(expanded) {
		return expanded
	}
	return filepath.Join(g.rootDir, expanded)
}

// globToRegexp compiles a shell-style wildcard pattern. Unlike path.Match,
// "*" and "?" cross path separators, which is what ignore patterns like
// "*_autogen*" rely on.
func globToRegexp(pattern string) *regexp.Regexp {
	var b strings.Builder
	b.WriteString(`(?s)^`)
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '*':
			b.WriteString(`.*`)
		case '?':
			b.WriteString(`.`)
		case '[':
			j := i + 1
			if j < len(pattern) && (pattern[j] == '!' || pattern[j] == '^') {
				j++
			}
			if j < len(pattern) && pattern[j] == ']' {
				j++
			}
			for j < len(pattern) && pattern[j] != ']' {
				j++
			}
			if j >= len(pattern) {
				b.WriteString(`\[`)
				break
			}
			set := pattern[i+1 : j]
			set = strings.ReplaceAll(set, `\`, `\\`)
			if strings.HasPrefix(set, "!") {
				set = "^" + set[1:]
			}
			b.WriteString("[" + set + "]")
			i = j
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	b.WriteString(`$`)
	return regexp.MustCompile(b.String())
}

type ignoreSet struct {
	patterns []*regexp.Regexp
}

func newIgnoreSet(patterns []string) *ignoreSet {
	set := &ignoreSet{}
	for _, p := range patterns {
		set.patterns = append(set.patterns, globToRegexp(p))
	}
	return set
}

func (s *ignoreSet) Matches(path string) bool {
	for _, re := range s.patterns {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}
