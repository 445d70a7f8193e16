package paths

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/vladcraftcom/presetforge/pkg/errors"
	"github.com/vladcraftcom/presetforge/pkg/logging"
)

// configFile is the on-disk shape of the persisted config
type configFile struct {
	PresetsDir string `toml:"presets_dir"`
}

// Save persists the presets directory to the config file, creating parent
// directories as needed. The environment variable, when set, still wins on
// the next Load.
func (p *Provider) Save(path string) error {
	log := logging.GetLogger("paths")

	data, err := toml.Marshal(configFile{PresetsDir: path})
	if err != nil {
		return errors.Wrap(err, errors.ErrPathSave, "failed to encode config")
	}

	if err := os.MkdirAll(filepath.Dir(p.configPath), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrPathSave,
			"failed to create config directory %s", filepath.Dir(p.configPath))
	}

	if err := os.WriteFile(p.configPath, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrPathSave,
			"failed to write config file %s", p.configPath)
	}

	log.Info().Str("dir", path).Str("config", p.configPath).Msg("Presets path saved")
	return nil
}
