// Package config loads the cleanup configuration: path pattern lists for the
// ignore/exe/nonexe matchers plus the executable-bit classification tables.
//
// Built-in defaults are embedded; a user file (YAML or TOML, picked by
// extension) is merged on top.
package config

import (
	"path/filepath"
	"sort"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/dmlevin/srctidy/pkg/errors"
)

// Config wraps the merged configuration tree.
type Config struct {
	k *koanf.Koanf
}

// Load builds the configuration from embedded defaults plus the optional user
// file at path (empty path means defaults only).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load embedded defaults")
	}

	if path != "" {
		parser := pickParser(path)
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
		}
	}

	return &Config{k: k}, nil
}

func pickParser(path string) koanf.Parser {
	if filepath.Ext(path) == ".toml" {
		return toml.Parser()
	}
	return yaml.Parser()
}

// patternList reads a key that may hold either a list of strings or a single
// string.
func (c *Config) patternList(key string) []string {
	if !c.k.Exists(key) {
		return nil
	}
	if values := c.k.Strings(key); len(values) > 0 {
		return values
	}
	if value := c.k.String(key); value != "" {
		return []string{value}
	}
	return nil
}

// IgnorePatterns returns the paths the text-file scan should skip.
func (c *Config) IgnorePatterns() []string {
	return c.patternList("ignore")
}

// ExePatterns returns the paths allowed to keep executable bits.
func (c *Config) ExePatterns() []string {
	return c.patternList("exe")
}

// NonExePatterns returns the paths that must not be executable.
func (c *Config) NonExePatterns() []string {
	return c.patternList("nonexe")
}

// ExeGroupLists returns the merged classification lists across every
// configured exe_groups entry, in stable group order.
func (c *Config) ExeGroupLists() (nonExeSuffixes, nonExeNames, exeSuffixes []string) {
	groups := c.k.MapKeys("exe_groups")
	sort.Strings(groups)

	for _, group := range groups {
		prefix := "exe_groups." + group + "."
		nonExeSuffixes = append(nonExeSuffixes, c.k.Strings(prefix+"non_exe_suffixes")...)
		nonExeNames = append(nonExeNames, c.k.Strings(prefix+"non_exe_names")...)
		exeSuffixes = append(exeSuffixes, c.k.Strings(prefix+"exe_suffixes")...)
	}
	return nonExeSuffixes, nonExeNames, exeSuffixes
}
