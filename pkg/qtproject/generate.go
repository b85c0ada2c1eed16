package qtproject

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dmlevin/srctidy/pkg/errors"
	"github.com/dmlevin/srctidy/pkg/logging"
	"github.com/dmlevin/srctidy/pkg/pathmatch"
	"github.com/dmlevin/srctidy/pkg/scan"
)

// Options configure one project generation run.
type Options struct {
	// ConfigPath is the YAML project manifest.
	ConfigPath string
	// RootDir is the source root all relative manifest paths resolve against.
	RootDir string
	// ProjectDir receives the generated files; created if missing.
	ProjectDir string
	// LocalPath is the optional per-user overlay with path mappings and
	// config overrides.
	LocalPath string
	// Variants select which variant-gated manifest sections apply.
	Variants []string
}

type generator struct {
	m          *manifest
	rootDir    string
	projectDir string
	platform   string
	log        zerolog.Logger
}

// Generate writes the QtCreator generic project files (.creator, .cflags,
// .cxxflags, .config, .includes, .files) described by the manifest.
func Generate(opts Options) error {
	configPath := realPath(opts.ConfigPath)
	rootDir := realPath(opts.RootDir)

	platform, err := platformKey()
	if err != nil {
		return err
	}

	m, err := loadManifest(configPath, opts.LocalPath, opts.Variants)
	if err != nil {
		return err
	}
	name, err := m.name()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.ProjectDir, 0o755); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot create project dir %s", opts.ProjectDir)
	}

	g := &generator{
		m:          m,
		rootDir:    rootDir,
		projectDir: opts.ProjectDir,
		platform:   platform,
		log:        logging.GetLogger("qtproject"),
	}

	if err := g.writeProjectFile(name+".creator", []byte("[General]\n")); err != nil {
		return err
	}
	if err := g.writeFlags(name + ".cflags"); err != nil {
		return err
	}
	if err := g.writeFlags(name + ".cxxflags"); err != nil {
		return err
	}
	if err := g.writeConfig(name + ".config"); err != nil {
		return err
	}
	if err := g.writeIncludes(name + ".includes"); err != nil {
		return err
	}
	return g.writeFiles(name + ".files")
}

func (g *generator) writeProjectFile(name string, data []byte) error {
	path := filepath.Join(g.projectDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path)
	}
	return nil
}

// writeFlags emits the cflags/cxxflags file: one space-joined line, or an
// empty file when the manifest has no such section.
func (g *generator) writeFlags(name string) error {
	key := filepath.Ext(name)[1:]
	list, err := g.m.getArray(key, false)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if list != nil {
		flags, err := stringItems(list, key)
		if err != nil {
			return err
		}
		buf.WriteString(strings.Join(flags, " "))
		buf.WriteByte('\n')
	}
	return g.writeProjectFile(name, buf.Bytes())
}

func (g *generator) writeConfig(name string) error {
	var buf bytes.Buffer

	macros, err := g.m.getDict("macros")
	if err != nil {
		return err
	}
	if macros != nil {
		if err := g.processMacros(&buf, macros, nil); err != nil {
			return err
		}
	}

	undef, err := g.m.getDict("undef")
	if err != nil {
		return err
	}
	if undef != nil {
		if err := g.processUndef(&buf, undef, nil); err != nil {
			return err
		}
	}

	return g.writeProjectFile(name, buf.Bytes())
}

func sectionHeader(buf *bytes.Buffer, stack []string) {
	buf.WriteByte('\n')
	if len(stack) == 0 {
		buf.WriteString("// common\n")
	} else {
		buf.WriteString("// " + strings.Join(stack, "/") + "\n")
	}
}

// processMacros emits #define lines. A nested mapping keyed by a variant name
// gates its content on that variant being selected.
func (g *generator) processMacros(buf *bytes.Buffer, macros map[string]any, stack []string) error {
	sectionHeader(buf, stack)

	for _, key := range sortedMapKeys(macros) {
		switch value := macros[key].(type) {
		case nil:
			fmt.Fprintf(buf, "#define %s\n", key)
		case int:
			fmt.Fprintf(buf, "#define %s %d\n", key, value)
		case string:
			fmt.Fprintf(buf, "#define %s %s\n", key, value)
		case map[string]any:
			selected, err := g.m.isVariantSelected(key)
			if err != nil {
				return err
			}
			if selected {
				if err := g.processMacros(buf, value, append(stack, key)); err != nil {
					return err
				}
			}
		default:
			return errors.Newf(errors.ErrManifestValid,
				"invalid macro value: key=%s value=%v", key, value)
		}
	}
	return nil
}

func (g *generator) processUndef(buf *bytes.Buffer, macros map[string]any, stack []string) error {
	sectionHeader(buf, stack)

	for _, key := range sortedMapKeys(macros) {
		switch value := macros[key].(type) {
		case nil:
			fmt.Fprintf(buf, "#undef %s\n", key)
		case map[string]any:
			selected, err := g.m.isVariantSelected(key)
			if err != nil {
				return err
			}
			if selected {
				if err := g.processUndef(buf, value, append(stack, key)); err != nil {
					return err
				}
			}
		default:
			return errors.Newf(errors.ErrManifestValid,
				"invalid undef value: key=%s value=%v", key, value)
		}
	}
	return nil
}

func (g *generator) writeIncludes(name string) error {
	var buf bytes.Buffer

	for _, key := range []string{"includes", g.platform + "_includes"} {
		includes, err := g.m.getArray(key, false)
		if err != nil {
			return err
		}
		if includes == nil {
			continue
		}
		if err := g.processIncludes(&buf, includes, true); err != nil {
			return err
		}
	}

	return g.writeProjectFile(name, buf.Bytes())
}

func (g *generator) processIncludes(buf *bytes.Buffer, includes []any, allowVariants bool) error {
	for _, include := range includes {
		switch entry := include.(type) {
		case string:
			expanded := g.expandPathAbs(entry)
			buf.WriteString(expanded)
			buf.WriteByte('\n')
			if info, err := os.Stat(expanded); err != nil || !info.IsDir() {
				g.log.Warn().Str("include", expanded).Msg("include directory does not exist")
			}
		case map[string]any:
			if !allowVariants {
				return errors.New(errors.ErrManifestValid, "nested include variants are not allowed")
			}
			for _, key := range sortedMapKeys(entry) {
				selected, err := g.m.isVariantSelected(key)
				if err != nil {
					return err
				}
				if !selected {
					continue
				}
				nested, err := asList(entry[key], key)
				if err != nil {
					return err
				}
				if err := g.processIncludes(buf, nested, false); err != nil {
					return err
				}
			}
		default:
			return errors.Newf(errors.ErrManifestValid, "invalid include entry: %v", include)
		}
	}
	return nil
}

// dirPatterns rewrites plain directory entries into prefix patterns so the
// matcher treats them as whole-subtree matches. root is empty for absolute
// entries.
func dirPatterns(root string, patterns []string) []string {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if !strings.Contains(p, "*") && !strings.HasSuffix(p, "/") {
			abs := p
			if root != "" {
				abs = filepath.Join(root, p)
			}
			if info, err := os.Stat(abs); err == nil && info.IsDir() {
				p += "/"
			}
		}
		out = append(out, p)
	}
	return out
}

func (g *generator) writeFiles(name string) error {
	ignoreList, err := g.m.getArray("ignore", false)
	if err != nil {
		return err
	}
	ignorePatterns, err := stringItems(ignoreList, "ignore")
	if err != nil {
		return err
	}
	ignores := newIgnoreSet(ignorePatterns)

	excludeList, err := g.m.getArray("exclude", false)
	if err != nil {
		return err
	}
	excludes, err := stringItems(excludeList, "exclude")
	if err != nil {
		return err
	}

	var absExcludes, relExcludes []string
	for _, exclude := range excludes {
		expanded := g.expandPathNorm(exclude)
		g.log.Debug().Str("exclude", exclude).Str("expanded", expanded).Msg("exclude entry")
		if filepath.IsAbs(expanded) {
			absExcludes = append(absExcludes, expanded)
		} else {
			relExcludes = append(relExcludes, expanded)
		}
	}

	absExcludeMatcher, err := pathmatch.FromAbs(dirPatterns("", absExcludes))
	if err != nil {
		return err
	}
	relExcludeMatcher, err := pathmatch.FromRoot(g.rootDir, dirPatterns(g.rootDir, relExcludes))
	if err != nil {
		return err
	}

	fileList, err := g.m.getArray("files", true)
	if err != nil {
		return err
	}
	paths, err := stringItems(fileList, "files")
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	for _, path := range paths {
		fmt.Fprintf(&buf, "\n# %s\n", path)
		expanded := g.expandPathNorm(path)

		isAbs := filepath.IsAbs(expanded)
		absExpanded := expanded
		excludeMatcher := absExcludeMatcher
		if !isAbs {
			absExpanded = filepath.Join(g.rootDir, expanded)
			excludeMatcher = relExcludeMatcher
		}

		var files []string
		if info, statErr := os.Stat(absExpanded); statErr == nil && info.IsDir() {
			listed, err := scan.UniquePaths(absExpanded, nil)
			if err != nil {
				return err
			}
			for _, fp := range listed {
				files = append(files, filepath.Clean(expanded+"/"+fp))
			}
		} else {
			var matcher *pathmatch.Matcher
			if isAbs {
				matcher, err = pathmatch.FromAbs([]string{expanded})
			} else {
				matcher, err = pathmatch.FromRoot(g.rootDir, []string{expanded})
			}
			if err != nil {
				return err
			}
			files = matcher.Files()
		}

		total := 0
		for _, fp := range files {
			total++
			if ignores.Matches(fp) {
				continue
			}
			if excludeMatcher.Matches(fp) {
				continue
			}
			absFp := fp
			if !isAbs {
				absFp = filepath.Join(g.rootDir, fp)
			}
			buf.WriteString(absFp)
			buf.WriteByte('\n')
		}

		if total == 0 {
			g.log.Warn().Str("path", expanded).Msg("path does not have files")
		}
	}

	return g.writeProjectFile(name, buf.Bytes())
}

func stringItems(list []any, key string) ([]string, error) {
	out := make([]string, 0, len(list))
	for _, item := range list {
		text, ok := item.(string)
		if !ok {
			return nil, errors.Newf(errors.ErrManifestValid, "%s entries must be strings", key)
		}
		out = append(out, text)
	}
	return out, nil
}
