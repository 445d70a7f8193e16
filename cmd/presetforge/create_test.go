package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladcraftcom/presetforge/pkg/errors"
	"github.com/vladcraftcom/presetforge/pkg/testutil"
	"github.com/vladcraftcom/presetforge/pkg/types"
)

func TestParseFieldValues(t *testing.T) {
	values, err := parseFieldValues([]string{"author=Ada Lovelace", "team=core=infra"})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", values["author"])
	assert.Equal(t, "core=infra", values["team"], "only the first = separates id from value")

	_, err = parseFieldValues([]string{"noequals"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = parseFieldValues([]string{"=value"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestParseOptionValues(t *testing.T) {
	declared := []types.Option{
		{ID: "git_init", Default: true},
		{ID: "ci", Default: false},
	}

	values, err := parseOptionValues([]string{"ci=true"}, declared)
	require.NoError(t, err)
	assert.True(t, values["git_init"], "declared default carries over")
	assert.True(t, values["ci"], "flag overrides default")

	values, err = parseOptionValues([]string{"git_init=false"}, declared)
	require.NoError(t, err)
	assert.False(t, values["git_init"])

	_, err = parseOptionValues([]string{"ci=maybe"}, declared)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestResolvePresetID(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.SetupPreset(t, testutil.BasicPreset("book"), nil)
	env.SetupPreset(t, testutil.BasicPreset("software"), nil)

	// Explicit request passes through untouched
	id, err := resolvePresetID(env.FS, env.PresetsDir, "book")
	require.NoError(t, err)
	assert.Equal(t, "book", id)

	// "software" wins when nothing was requested
	id, err = resolvePresetID(env.FS, env.PresetsDir, "")
	require.NoError(t, err)
	assert.Equal(t, "software", id)
}

func TestResolvePresetID_FirstWhenNoSoftwarePreset(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.SetupPreset(t, testutil.BasicPreset("book"), nil)
	env.SetupPreset(t, testutil.BasicPreset("article"), nil)

	id, err := resolvePresetID(env.FS, env.PresetsDir, "")
	require.NoError(t, err)
	assert.Equal(t, "article", id)
}

func TestResolvePresetID_EmptyPresetsDir(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	_, err := resolvePresetID(env.FS, env.PresetsDir, "")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPresetNotFound))
}
