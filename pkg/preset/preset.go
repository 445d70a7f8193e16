// Package preset loads and discovers preset descriptors.
//
// A preset lives in its own directory under the presets root and is described
// by a files_config.json descriptor (a files_config.yaml variant is accepted
// when the JSON file is absent). The directory name is the preset id; a
// descriptor whose preset_id disagrees with its directory is rejected.
package preset

import (
	"encoding/json"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vladcraftcom/presetforge/pkg/errors"
	"github.com/vladcraftcom/presetforge/pkg/logging"
	"github.com/vladcraftcom/presetforge/pkg/types"
)

// Descriptor filenames probed inside a preset directory, in order.
const (
	ConfigFileJSON = "files_config.json"
	ConfigFileYAML = "files_config.yaml"
)

// Load reads, validates and decodes the descriptor for the given preset id.
func Load(filesystem types.FS, presetsRoot, presetID string) (*types.Preset, error) {
	log := logging.GetLogger("preset")

	path, data, err := readDescriptor(filesystem, presetsRoot, presetID)
	if err != nil {
		return nil, err
	}

	var doc interface{}
	var p types.Preset

	switch filepath.Ext(path) {
	case ".yaml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse preset config %s", path)
		}
		if err := validateDocument(doc, path); err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse preset config %s", path)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse preset config %s", path)
		}
		if err := validateDocument(doc, path); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse preset config %s", path)
		}
	}

	// The directory name is the preset's identity; a disagreeing descriptor
	// would make the materializer resolve template sources against the wrong
	// directory.
	if p.ID != presetID {
		return nil, errors.Newf(errors.ErrConfigInvalid,
			"preset_id %q does not match preset directory %q", p.ID, presetID)
	}

	log.Debug().
		Str("preset", p.ID).
		Int("directories", len(p.Directories)).
		Int("templates", len(p.Templates)).
		Int("fields", len(p.Fields)).
		Msg("Preset descriptor loaded")

	return &p, nil
}

// readDescriptor locates and reads the descriptor file for a preset,
// preferring the JSON form.
func readDescriptor(filesystem types.FS, presetsRoot, presetID string) (string, []byte, error) {
	dir := filepath.Join(presetsRoot, presetID)

	for _, name := range []string{ConfigFileJSON, ConfigFileYAML} {
		path := filepath.Join(dir, name)
		data, err := filesystem.ReadFile(path)
		if err == nil {
			return path, data, nil
		}
	}

	return "", nil, errors.Newf(errors.ErrPresetNotFound,
		"preset %q has no %s in %s", presetID, ConfigFileJSON, dir)
}

// Discover scans the presets root and returns the ids of all directories
// containing a descriptor file, sorted for deterministic output.
func Discover(filesystem types.FS, presetsRoot string) ([]string, error) {
	entries, err := filesystem.ReadDir(presetsRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad,
			"failed to read presets directory %s", presetsRoot)
	}

	var ids []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if hasDescriptor(filesystem, filepath.Join(presetsRoot, entry.Name())) {
			ids = append(ids, entry.Name())
		}
	}

	sort.Strings(ids)
	return ids, nil
}

// DisplayName returns the human-readable name for a preset, falling back to
// the preset id when the descriptor cannot be loaded.
func DisplayName(filesystem types.FS, presetsRoot, presetID string) string {
	p, err := Load(filesystem, presetsRoot, presetID)
	if err != nil {
		return presetID
	}
	return p.DisplayName()
}

func hasDescriptor(filesystem types.FS, dir string) bool {
	for _, name := range []string{ConfigFileJSON, ConfigFileYAML} {
		if info, err := filesystem.Stat(filepath.Join(dir, name)); err == nil && info.Mode().IsRegular() {
			return true
		}
	}
	return false
}
