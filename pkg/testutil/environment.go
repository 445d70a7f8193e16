// Package testutil provides test fixtures shared across presetforge
// packages: an in-memory filesystem and preset directory builders.
package testutil

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/vladcraftcom/presetforge/pkg/types"
)

// TestEnvironment bundles an in-memory filesystem with conventional preset
// and project locations
type TestEnvironment struct {
	FS         *MemoryFS
	PresetsDir string
	WorkDir    string
}

// NewTestEnvironment creates an isolated in-memory environment
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		FS:         NewMemoryFS(),
		PresetsDir: "/home/user/presets",
		WorkDir:    "/home/user/work",
	}
	if err := env.FS.MkdirAll(env.PresetsDir, 0755); err != nil {
		t.Fatalf("setup presets dir: %v", err)
	}
	if err := env.FS.MkdirAll(env.WorkDir, 0755); err != nil {
		t.Fatalf("setup work dir: %v", err)
	}
	return env
}

// SetupPreset writes a preset directory with its descriptor and template
// source files
func (e *TestEnvironment) SetupPreset(t *testing.T, p types.Preset, files map[string]string) {
	t.Helper()

	dir := filepath.Join(e.PresetsDir, p.ID)
	if err := e.FS.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("setup preset dir: %v", err)
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal descriptor: %v", err)
	}
	if err := e.FS.WriteFile(filepath.Join(dir, "files_config.json"), data, 0644); err != nil {
		t.Fatalf("write descriptor: %v", err)
	}

	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := e.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("setup template parent: %v", err)
		}
		if err := e.FS.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write template %s: %v", name, err)
		}
	}
}

// BasicPreset returns a small but representative descriptor for tests
func BasicPreset(id string) types.Preset {
	return types.Preset{
		ID:          id,
		Name:        "Test Preset",
		Description: "A preset used in tests",
		Directories: []string{"src", "docs/notes"},
		Templates: []types.Template{
			{Source: "templates/main.txt", Destination: "src/main.txt"},
			{Source: "templates/missing.txt", Destination: "src/missing.txt"},
		},
		EmptyFiles:     []string{"TODO.txt", "docs/notes/.keep"},
		ReadmeTemplate: "Project {PROJECT_NAME} created on {date}.\nAuthor: {AUTHOR}\n",
		Fields: []types.Field{
			{ID: "author", Label: "Author", Required: true, Kind: types.FieldText},
		},
		Options: []types.Option{
			{ID: "git_init", Label: "Initialize git", Default: true},
		},
	}
}
