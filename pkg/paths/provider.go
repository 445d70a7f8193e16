package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	koanftoml "github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/vladcraftcom/presetforge/pkg/logging"
)

const (
	// EnvPresetsDir overrides the presets directory for the current session
	EnvPresetsDir = "PRESETFORGE_PRESETS_DIR"

	// AppDirName is the directory name used under XDG base directories
	AppDirName = "presetforge"

	// ConfigFileName is the name of the persisted config file
	ConfigFileName = "config.toml"

	// presetsDirKey is the config key holding the presets directory
	presetsDirKey = "presets_dir"

	// DefaultPresetsDirName is the directory name used for the default
	// presets location under the user's Documents directory
	DefaultPresetsDirName = "presetforge-presets"
)

// Provider resolves and persists the presets directory. It implements
// types.PathProvider.
type Provider struct {
	configPath string
	getenv     func(string) string
}

// NewProvider creates a Provider using the process environment and the XDG
// config directory.
func NewProvider() *Provider {
	return &Provider{
		configPath: filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName),
		getenv:     os.Getenv,
	}
}

// NewProviderWith creates a Provider with an explicit config file path and
// environment lookup. Used by tests.
func NewProviderWith(configPath string, getenv func(string) string) *Provider {
	return &Provider{configPath: configPath, getenv: getenv}
}

// Load returns the persisted presets directory, if any. The environment
// variable wins over the config file so a shell session can point at a
// scratch presets tree without rewriting the config.
func (p *Provider) Load() (string, bool) {
	if dir := strings.TrimSpace(p.getenv(EnvPresetsDir)); dir != "" {
		return dir, true
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(p.configPath), koanftoml.Parser()); err != nil {
		return "", false
	}

	if dir := strings.TrimSpace(k.String(presetsDirKey)); dir != "" {
		return dir, true
	}

	return "", false
}

// ConfigPath returns the path of the config file the Provider reads and writes
func (p *Provider) ConfigPath() string {
	return p.configPath
}

// DefaultPresetsDir returns the platform default presets location
func DefaultPresetsDir() string {
	documents := xdg.UserDirs.Documents
	if documents == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultPresetsDirName
		}
		documents = filepath.Join(home, "Documents")
	}
	return filepath.Join(documents, DefaultPresetsDirName)
}

// Resolve returns the presets directory to use: the persisted location when
// one exists, otherwise the platform default.
func (p *Provider) Resolve() string {
	if dir, ok := p.Load(); ok {
		return dir
	}

	dir := DefaultPresetsDir()
	logger := logging.GetLogger("paths")
	logger.Debug().Str("dir", dir).Msg("No presets path persisted, using default")
	return dir
}
