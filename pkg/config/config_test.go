package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsOnly(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	nonExeSuffixes, nonExeNames, exeSuffixes := cfg.ExeGroupLists()
	assert.Contains(t, nonExeSuffixes, "y")
	assert.Contains(t, nonExeSuffixes, "cpp")
	assert.Contains(t, nonExeNames, "Makefile")
	assert.Contains(t, exeSuffixes, "sh")

	assert.Nil(t, cfg.IgnorePatterns())
	assert.Nil(t, cfg.ExePatterns())
	assert.Nil(t, cfg.NonExePatterns())
}

func TestLoadUserYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "srctidy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
ignore:
  - third_party/
  - "**/*.bin"
exe: tools/run.sh
nonexe:
  - data/blob.dat
exe_groups:
  user:
    non_exe_suffixes:
      - xyz
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"third_party/", "**/*.bin"}, cfg.IgnorePatterns())
	// single string values coerce to one-element lists
	assert.Equal(t, []string{"tools/run.sh"}, cfg.ExePatterns())
	assert.Equal(t, []string{"data/blob.dat"}, cfg.NonExePatterns())

	nonExeSuffixes, _, _ := cfg.ExeGroupLists()
	assert.Contains(t, nonExeSuffixes, "xyz")
	// built-in groups survive the merge
	assert.Contains(t, nonExeSuffixes, "cpp")
}

func TestLoadUserTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "srctidy.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
ignore = ["vendor/"]

[exe_groups.user]
exe_suffixes = ["run"]
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"vendor/"}, cfg.IgnorePatterns())
	_, _, exeSuffixes := cfg.ExeGroupLists()
	assert.Contains(t, exeSuffixes, "run")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
