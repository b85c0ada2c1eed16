package qtproject

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmlevin/srctidy/pkg/errors"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func realRoot(t *testing.T) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return root
}

func readOutput(t *testing.T, projectDir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(projectDir, name))
	require.NoError(t, err)
	return string(data)
}

func TestGenerateBasic(t *testing.T) {
	root := realRoot(t)
	projectDir := filepath.Join(t.TempDir(), "proj")

	writeTestFile(t, filepath.Join(root, "src", "a.c"), "int a;\n")
	writeTestFile(t, filepath.Join(root, "src", "gen", "x.c"), "int x;\n")
	writeTestFile(t, filepath.Join(root, "src", "note.tmp"), "scratch\n")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "inc"), 0o755))

	manifest := filepath.Join(root, "project.yaml")
	writeTestFile(t, manifest, `
name: demo
variants: [debug]
cflags: [-O2, -g]
macros:
  BAR: text
  BAZ:
  FOO: 1
undef:
  NDEBUG:
includes:
  - inc
files:
  - src
ignore:
  - "*.tmp"
exclude:
  - src/gen
`)

	err := Generate(Options{
		ConfigPath: manifest,
		RootDir:    root,
		ProjectDir: projectDir,
	})
	require.NoError(t, err)

	assert.Equal(t, "[General]\n", readOutput(t, projectDir, "demo.creator"))
	assert.Equal(t, "-O2 -g\n", readOutput(t, projectDir, "demo.cflags"))
	assert.Equal(t, "", readOutput(t, projectDir, "demo.cxxflags"))

	wantConfig := "\n// common\n" +
		"#define BAR text\n" +
		"#define BAZ\n" +
		"#define FOO 1\n" +
		"\n// common\n" +
		"#undef NDEBUG\n"
	assert.Equal(t, wantConfig, readOutput(t, projectDir, "demo.config"))

	assert.Equal(t, filepath.Join(root, "inc")+"\n", readOutput(t, projectDir, "demo.includes"))

	// gen/ is excluded, note.tmp is ignored
	wantFiles := "\n# src\n" + filepath.Join(root, "src", "a.c") + "\n"
	assert.Equal(t, wantFiles, readOutput(t, projectDir, "demo.files"))
}

func TestGenerateVariantGatedMacros(t *testing.T) {
	root := realRoot(t)
	writeTestFile(t, filepath.Join(root, "main.c"), "int main;\n")

	manifest := filepath.Join(root, "project.yaml")
	writeTestFile(t, manifest, `
name: demo
variants: [debug, release]
macros:
  COMMON: 1
  debug:
    TRACE: 1
  release:
    NDEBUG:
files:
  - main.c
`)

	run := func(variants ...string) string {
		projectDir := filepath.Join(t.TempDir(), "proj")
		err := Generate(Options{
			ConfigPath: manifest,
			RootDir:    root,
			ProjectDir: projectDir,
			Variants:   variants,
		})
		require.NoError(t, err)
		return readOutput(t, projectDir, "demo.config")
	}

	plain := run()
	assert.Contains(t, plain, "#define COMMON 1")
	assert.NotContains(t, plain, "TRACE")
	assert.NotContains(t, plain, "NDEBUG")

	debug := run("debug")
	assert.Contains(t, debug, "// debug")
	assert.Contains(t, debug, "#define TRACE 1")
	assert.NotContains(t, debug, "NDEBUG")
}

func TestGenerateInvalidVariant(t *testing.T) {
	root := realRoot(t)
	manifest := filepath.Join(root, "project.yaml")
	writeTestFile(t, manifest, "name: demo\nvariants: [debug]\nfiles: []\n")

	err := Generate(Options{
		ConfigPath: manifest,
		RootDir:    root,
		ProjectDir: filepath.Join(t.TempDir(), "proj"),
		Variants:   []string{"bogus"},
	})
	require.Error(t, err)
	assert.Equal(t, errors.ErrManifestValid, errors.GetErrorCode(err))
}

func TestGenerateMissingFilesSection(t *testing.T) {
	root := realRoot(t)
	manifest := filepath.Join(root, "project.yaml")
	writeTestFile(t, manifest, "name: demo\n")

	err := Generate(Options{
		ConfigPath: manifest,
		RootDir:    root,
		ProjectDir: filepath.Join(t.TempDir(), "proj"),
	})
	require.Error(t, err)
	assert.Equal(t, errors.ErrManifestValid, errors.GetErrorCode(err))
}

func TestGenerateLocalOverlay(t *testing.T) {
	root := realRoot(t)
	external := realRoot(t)
	projectDir := filepath.Join(t.TempDir(), "proj")

	writeTestFile(t, filepath.Join(root, "main.c"), "int main;\n")
	writeTestFile(t, filepath.Join(external, "lib.c"), "int lib;\n")

	manifest := filepath.Join(root, "project.yaml")
	writeTestFile(t, manifest, `
name: demo
cflags: [-O2]
files:
  - main.c
  - $extdir
`)
	local := filepath.Join(root, "local.yaml")
	writeTestFile(t, local, "extdir: "+external+"\nconfig:\n  cflags: [-flto]\n")

	err := Generate(Options{
		ConfigPath: manifest,
		RootDir:    root,
		ProjectDir: projectDir,
		LocalPath:  local,
	})
	require.NoError(t, err)

	assert.Equal(t, "-O2 -flto\n", readOutput(t, projectDir, "demo.cflags"))

	files := readOutput(t, projectDir, "demo.files")
	assert.Contains(t, files, filepath.Join(root, "main.c")+"\n")
	assert.Contains(t, files, filepath.Join(external, "lib.c")+"\n")
}

func TestGenerateSingleFileEntry(t *testing.T) {
	root := realRoot(t)
	projectDir := filepath.Join(t.TempDir(), "proj")
	writeTestFile(t, filepath.Join(root, "main.c"), "int main;\n")

	manifest := filepath.Join(root, "project.yaml")
	writeTestFile(t, manifest, "name: demo\nfiles:\n  - main.c\n")

	require.NoError(t, Generate(Options{
		ConfigPath: manifest,
		RootDir:    root,
		ProjectDir: projectDir,
	}))

	want := "\n# main.c\n" + filepath.Join(root, "main.c") + "\n"
	assert.Equal(t, want, readOutput(t, projectDir, "demo.files"))
}

func TestGlobToRegexpCrossesSeparators(t *testing.T) {
	re := globToRegexp("*_autogen*")
	assert.True(t, re.MatchString("build/foo_autogen/mocs.cpp"))
	assert.False(t, re.MatchString("src/foo.cpp"))

	re = globToRegexp("*.tmp")
	assert.True(t, re.MatchString("a/b/c.tmp"))
	assert.False(t, re.MatchString("a/b/c.tmpx"))
}

func TestExpandMappingsUnresolved(t *testing.T) {
	m := &manifest{mappings: map[string]string{"known": "/opt/x"}}

	mapped, ok := m.expandMappings("$known/sub")
	assert.True(t, ok)
	assert.Equal(t, "/opt/x/sub", mapped)

	_, ok = m.expandMappings("$unknown/sub")
	assert.False(t, ok)
}
