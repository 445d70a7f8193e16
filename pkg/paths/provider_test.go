package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladcraftcom/presetforge/pkg/paths"
)

func noEnv(string) string { return "" }

func TestProvider_LoadPrefersEnvironment(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("presets_dir = \"/from/config\"\n"), 0644))

	provider := paths.NewProviderWith(configPath, func(key string) string {
		if key == paths.EnvPresetsDir {
			return "/from/env"
		}
		return ""
	})

	dir, ok := provider.Load()
	require.True(t, ok)
	assert.Equal(t, "/from/env", dir)
}

func TestProvider_LoadFallsBackToConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("presets_dir = \"/from/config\"\n"), 0644))

	provider := paths.NewProviderWith(configPath, noEnv)

	dir, ok := provider.Load()
	require.True(t, ok)
	assert.Equal(t, "/from/config", dir)
}

func TestProvider_LoadNothingPersisted(t *testing.T) {
	provider := paths.NewProviderWith(filepath.Join(t.TempDir(), "config.toml"), noEnv)

	_, ok := provider.Load()
	assert.False(t, ok)
}

func TestProvider_LoadIgnoresBlankConfigValue(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("presets_dir = \"  \"\n"), 0644))

	provider := paths.NewProviderWith(configPath, noEnv)

	_, ok := provider.Load()
	assert.False(t, ok)
}

func TestProvider_SaveThenLoadRoundTrips(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.toml")
	provider := paths.NewProviderWith(configPath, noEnv)

	require.NoError(t, provider.Save("/my/presets"))

	dir, ok := provider.Load()
	require.True(t, ok)
	assert.Equal(t, "/my/presets", dir)
}

func TestProvider_ResolveFallsBackToDefault(t *testing.T) {
	provider := paths.NewProviderWith(filepath.Join(t.TempDir(), "config.toml"), noEnv)

	assert.Equal(t, paths.DefaultPresetsDir(), provider.Resolve())
}

func TestDefaultPresetsDir_IsAbsoluteish(t *testing.T) {
	dir := paths.DefaultPresetsDir()
	assert.Contains(t, dir, paths.DefaultPresetsDirName)
}
