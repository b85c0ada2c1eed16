// Package qtproject generates QtCreator generic project files from a YAML
// manifest plus an optional per-user local overlay.
package qtproject

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/dmlevin/srctidy/pkg/errors"
)

// platformKeys maps the runtime OS onto the manifest's platform prefix for
// <platform>_includes sections.
var platformKeys = map[string]string{
	"linux":   "linux",
	"windows": "win",
	"darwin":  "mac",
}

// manifest is the loaded configuration pair: the shared project manifest and
// the optional local overlay.
type manifest struct {
	config map[string]any
	local  map[string]any
	// mappings are the local $key path substitutions, config_dir included.
	mappings map[string]string
	// configVariants are the variants the manifest declares.
	configVariants map[string]struct{}
	// variants are the ones selected for this run.
	variants map[string]struct{}
}

func loadManifest(configPath, localPath string, selected []string) (*manifest, error) {
	m := &manifest{
		mappings:       make(map[string]string),
		configVariants: make(map[string]struct{}),
		variants:       make(map[string]struct{}),
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestLoad, "cannot read manifest %s", configPath)
	}
	if err := yaml.Unmarshal(data, &m.config); err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestLoad, "cannot parse manifest %s", configPath)
	}

	declared, err := asStringList(m.config["variants"])
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestValid, "invalid variants list")
	}
	for _, v := range declared {
		m.configVariants[v] = struct{}{}
	}
	for _, v := range selected {
		if _, ok := m.configVariants[v]; !ok {
			return nil, errors.Newf(errors.ErrManifestValid,
				"invalid variant: %s (allowed: %v)", v, declared)
		}
		m.variants[v] = struct{}{}
	}

	if localPath != "" {
		if err := m.loadLocal(localPath); err != nil {
			return nil, err
		}
	}
	m.mappings["config_dir"] = filepath.Dir(configPath)

	return m, nil
}

// loadLocal reads the overlay: a flat mapping of path substitutions plus an
// optional nested "config" document merged over the manifest.
func (m *manifest) loadLocal(localPath string) error {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrManifestLoad, "cannot read local config %s", localPath)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return errors.Wrapf(err, errors.ErrManifestLoad, "cannot parse local config %s", localPath)
	}
	if raw == nil {
		return nil
	}

	if nested, ok := raw["config"]; ok {
		delete(raw, "config")
		if nested != nil {
			local, ok := nested.(map[string]any)
			if !ok {
				return errors.Newf(errors.ErrManifestValid, "config in local conf must be a mapping")
			}
			m.local = local
		}
	}

	for key, value := range raw {
		text, ok := value.(string)
		if !ok {
			return errors.Newf(errors.ErrManifestValid, "invalid local mapping value for %s", key)
		}
		m.mappings[key] = expandUser(text)
	}

	return nil
}

// name returns the mandatory project name.
func (m *manifest) name() (string, error) {
	name, ok := m.config["name"].(string)
	if !ok || name == "" {
		return "", errors.New(errors.ErrManifestValid, "manifest must set a project name")
	}
	return name, nil
}

// getArray merges the manifest and local lists for key: local entries are
// appended. Returns nil when neither side has the key.
func (m *manifest) getArray(key string, required bool) ([]any, error) {
	c, cok := m.config[key]
	l, lok := m.local[key]
	if required && !cok {
		return nil, errors.Newf(errors.ErrManifestValid, "manifest is missing %s", key)
	}
	if !cok && !lok {
		return nil, nil
	}

	var merged []any
	if cok {
		list, err := asList(c, key)
		if err != nil {
			return nil, err
		}
		merged = append(merged, list...)
	}
	if lok {
		list, err := asList(l, key)
		if err != nil {
			return nil, err
		}
		merged = append(merged, list...)
	}
	return merged, nil
}

// getDict merges the manifest and local mappings for key: local entries win.
// Returns nil when neither side has the key.
func (m *manifest) getDict(key string) (map[string]any, error) {
	c, cok := m.config[key]
	l, lok := m.local[key]
	if !cok && !lok {
		return nil, nil
	}

	merged := make(map[string]any)
	if cok {
		dict, err := asDict(c, key)
		if err != nil {
			return nil, err
		}
		for k, v := range dict {
			merged[k] = v
		}
	}
	if lok {
		dict, err := asDict(l, key)
		if err != nil {
			return nil, err
		}
		for k, v := range dict {
			merged[k] = v
		}
	}
	return merged, nil
}

// isVariantSelected also validates the key names a declared variant.
func (m *manifest) isVariantSelected(key string) (bool, error) {
	if _, ok := m.configVariants[key]; !ok {
		return false, errors.Newf(errors.ErrManifestValid, "invalid variant key: %s", key)
	}
	_, selected := m.variants[key]
	return selected, nil
}

func platformKey() (string, error) {
	key, ok := platformKeys[runtime.GOOS]
	if !ok {
		return "", errors.Newf(errors.ErrInvalidInput, "unsupported platform: %s", runtime.GOOS)
	}
	return key, nil
}

func asList(value any, key string) ([]any, error) {
	list, ok := value.([]any)
	if !ok {
		return nil, errors.Newf(errors.ErrManifestValid, "%s must be a list", key)
	}
	return list, nil
}

func asDict(value any, key string) (map[string]any, error) {
	dict, ok := value.(map[string]any)
	if !ok {
		return nil, errors.Newf(errors.ErrManifestValid, "%s must be a mapping", key)
	}
	return dict, nil
}

func asStringList(value any) ([]string, error) {
	if value == nil {
		return nil, nil
	}
	list, ok := value.([]any)
	if !ok {
		return nil, errors.New(errors.ErrManifestValid, "expected a list of strings")
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		text, ok := item.(string)
		if !ok {
			return nil, errors.New(errors.ErrManifestValid, "expected a list of strings")
		}
		out = append(out, text)
	}
	return out, nil
}

func sortedMapKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
