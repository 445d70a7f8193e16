package create_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladcraftcom/presetforge/pkg/create"
	"github.com/vladcraftcom/presetforge/pkg/errors"
	"github.com/vladcraftcom/presetforge/pkg/testutil"
	"github.com/vladcraftcom/presetforge/pkg/types"
)

var fixedClock = func() time.Time {
	return time.Date(2024, 5, 2, 13, 37, 0, 0, time.UTC)
}

func setupEnv(t *testing.T) (*testutil.TestEnvironment, types.Preset) {
	t.Helper()
	env := testutil.NewTestEnvironment(t)
	p := testutil.BasicPreset("software")
	env.SetupPreset(t, p, map[string]string{
		"templates/main.txt": "template content\n",
	})
	return env, p
}

func baseOptions(env *testutil.TestEnvironment, p types.Preset) create.Options {
	return create.Options{
		TargetRoot:  filepath.Join(env.WorkDir, "demo"),
		PresetsDir:  env.PresetsDir,
		Preset:      &p,
		ProjectName: "demo",
		FieldValues: map[string]string{"author": "Ada"},
		OptionValues: map[string]bool{
			"git_init": true,
		},
		FileSystem: env.FS,
		Now:        fixedClock,
	}
}

func TestCreate_EmptyTarget_MaterializesDeclaredTree(t *testing.T) {
	env, p := setupEnv(t)
	opts := baseOptions(env, p)

	result, err := create.Create(opts)
	require.NoError(t, err)
	require.NotNil(t, result)

	// Declared directories
	assert.True(t, env.FS.Exists(filepath.Join(opts.TargetRoot, "src")))
	assert.True(t, env.FS.Exists(filepath.Join(opts.TargetRoot, "docs/notes")))

	// Template whose source exists is copied byte for byte
	content, err := env.FS.ReadFile(filepath.Join(opts.TargetRoot, "src/main.txt"))
	require.NoError(t, err)
	assert.Equal(t, "template content\n", string(content))

	// Template whose source is missing is only a warning
	assert.False(t, env.FS.Exists(filepath.Join(opts.TargetRoot, "src/missing.txt")))

	// Empty files
	empty, err := env.FS.ReadFile(filepath.Join(opts.TargetRoot, "TODO.txt"))
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.True(t, env.FS.Exists(filepath.Join(opts.TargetRoot, "docs/notes/.keep")))

	// Exactly one README
	readme, err := env.FS.ReadFile(filepath.Join(opts.TargetRoot, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "# demo")
	assert.Contains(t, string(readme), "Author: Ada")
}

func TestCreate_LogOrderAndContent(t *testing.T) {
	env, p := setupEnv(t)
	opts := baseOptions(env, p)

	result, err := create.Create(opts)
	require.NoError(t, err)

	target := opts.TargetRoot
	presetDir := filepath.Join(env.PresetsDir, "software")
	expected := []string{
		"Creating project directory: " + target,
		"Creating subdirectory: " + filepath.Join(target, "src"),
		"Creating subdirectory: " + filepath.Join(target, "docs/notes"),
		"Copying template: " + filepath.Join(presetDir, "templates/main.txt") + " -> " + filepath.Join(target, "src/main.txt"),
		"Warning: Template source not found: " + filepath.Join(presetDir, "templates/missing.txt"),
		"Creating empty file: " + filepath.Join(target, "TODO.txt"),
		"Creating empty file: " + filepath.Join(target, "docs/notes/.keep"),
		"Generating README: " + filepath.Join(target, "README.md"),
		"Project created successfully!",
	}
	assert.Equal(t, expected, result.Log)
}

func TestCreate_NonEmptyTargetWithoutForce_FailsWithoutWrites(t *testing.T) {
	env, p := setupEnv(t)
	opts := baseOptions(env, p)

	require.NoError(t, env.FS.MkdirAll(opts.TargetRoot, 0755))
	require.NoError(t, env.FS.WriteFile(filepath.Join(opts.TargetRoot, "existing.txt"), []byte("keep"), 0644))

	before := env.FS.WriteCount()

	result, err := create.Create(opts)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTargetNotEmpty))
	assert.Contains(t, err.Error(), opts.TargetRoot)
	assert.Equal(t, before, env.FS.WriteCount(), "a refused run must not touch the filesystem")
}

func TestCreate_ExistingEmptyTarget_IsNotAnError(t *testing.T) {
	env, p := setupEnv(t)
	opts := baseOptions(env, p)

	require.NoError(t, env.FS.MkdirAll(opts.TargetRoot, 0755))

	_, err := create.Create(opts)
	require.NoError(t, err)
}

func TestCreate_NonEmptyTargetWithForce_Succeeds(t *testing.T) {
	env, p := setupEnv(t)
	opts := baseOptions(env, p)
	opts.Force = true

	require.NoError(t, env.FS.MkdirAll(opts.TargetRoot, 0755))
	require.NoError(t, env.FS.WriteFile(filepath.Join(opts.TargetRoot, "existing.txt"), []byte("keep"), 0644))

	_, err := create.Create(opts)
	require.NoError(t, err)

	// Pre-existing content survives
	kept, err := env.FS.ReadFile(filepath.Join(opts.TargetRoot, "existing.txt"))
	require.NoError(t, err)
	assert.Equal(t, "keep", string(kept))
}

func TestCreate_SecondRunWithoutRefresh_SkipsEverything(t *testing.T) {
	env, p := setupEnv(t)
	opts := baseOptions(env, p)

	_, err := create.Create(opts)
	require.NoError(t, err)

	opts.Force = true
	result, err := create.Create(opts)
	require.NoError(t, err)

	assert.Contains(t, result.Log, "Skipping existing file: "+filepath.Join(opts.TargetRoot, "src/main.txt"))
	assert.Contains(t, result.Log, "Skipping existing empty file: "+filepath.Join(opts.TargetRoot, "TODO.txt"))
	for _, line := range result.Log {
		assert.NotContains(t, line, "Generating README", "existing README must be preserved")
	}
}

func TestCreate_Refresh_RestoresEditedTemplate(t *testing.T) {
	env, p := setupEnv(t)
	opts := baseOptions(env, p)

	_, err := create.Create(opts)
	require.NoError(t, err)

	dest := filepath.Join(opts.TargetRoot, "src/main.txt")
	require.NoError(t, env.FS.WriteFile(dest, []byte("user edit"), 0644))

	opts.Force = true
	opts.Refresh = true
	_, err = create.Create(opts)
	require.NoError(t, err)

	content, err := env.FS.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "template content\n", string(content))
}

func TestCreate_Refresh_RegeneratesReadme(t *testing.T) {
	env, p := setupEnv(t)
	opts := baseOptions(env, p)

	_, err := create.Create(opts)
	require.NoError(t, err)

	readmePath := filepath.Join(opts.TargetRoot, "README.md")
	require.NoError(t, env.FS.WriteFile(readmePath, []byte("user readme"), 0644))

	opts.Force = true
	opts.Refresh = true
	result, err := create.Create(opts)
	require.NoError(t, err)

	assert.Contains(t, result.Log, "Generating README: "+readmePath)
	content, err := env.FS.ReadFile(readmePath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# demo")
}

func TestCreate_InvalidProjectName_IsRejected(t *testing.T) {
	env, p := setupEnv(t)
	opts := baseOptions(env, p)
	opts.ProjectName = "../escape"

	result, err := create.Create(opts)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestCreate_MissingPreset_IsRejected(t *testing.T) {
	env, p := setupEnv(t)
	opts := baseOptions(env, p)
	opts.Preset = nil

	_, err := create.Create(opts)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestCreate_CopyFailure_AbortsWithoutLog(t *testing.T) {
	env, p := setupEnv(t)
	opts := baseOptions(env, p)

	dest := filepath.Join(opts.TargetRoot, "src/main.txt")
	env.FS.FailAt(dest, assert.AnError)

	result, err := create.Create(opts)
	require.Error(t, err)
	assert.Nil(t, result, "a fatal error surfaces no partial log")
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileCopy))
}

func TestCreate_DefaultClockAndFilesystem(t *testing.T) {
	// Exercise the defaulting paths against a real temp directory
	dir := t.TempDir()
	p := testutil.BasicPreset("software")
	p.Templates = nil

	result, err := create.Create(create.Options{
		TargetRoot:  filepath.Join(dir, "demo"),
		PresetsDir:  dir,
		Preset:      &p,
		ProjectName: "demo",
	})
	require.NoError(t, err)
	assert.Equal(t, "Project created successfully!", result.Log[len(result.Log)-1])
}
