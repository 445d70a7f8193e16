package testutil

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFS_WriteRequiresParentDirectory(t *testing.T) {
	m := NewMemoryFS()

	err := m.WriteFile("/missing/file.txt", []byte("x"), 0644)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	require.NoError(t, m.MkdirAll("/missing", 0755))
	require.NoError(t, m.WriteFile("/missing/file.txt", []byte("x"), 0644))

	content, err := m.ReadFile("/missing/file.txt")
	require.NoError(t, err)
	assert.Equal(t, "x", string(content))
}

func TestMemoryFS_ReadDirListsImmediateChildren(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.MkdirAll("/root/sub/deep", 0755))
	require.NoError(t, m.WriteFile("/root/a.txt", []byte("a"), 0644))

	entries, err := m.ReadDir("/root")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a.txt", entries[0].Name())
	assert.False(t, entries[0].IsDir())
	assert.Equal(t, "sub", entries[1].Name())
	assert.True(t, entries[1].IsDir())
}

func TestMemoryFS_StatDistinguishesFilesAndDirs(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.MkdirAll("/d", 0755))
	require.NoError(t, m.WriteFile("/d/f", []byte("ab"), 0644))

	info, err := m.Stat("/d")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	info, err = m.Stat("/d/f")
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, int64(2), info.Size())
	assert.True(t, info.Mode().IsRegular())

	_, err = m.Stat("/nope")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMemoryFS_ErrorInjection(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.MkdirAll("/d", 0755))
	m.FailAt("/d/f", assert.AnError)

	assert.ErrorIs(t, m.WriteFile("/d/f", []byte("x"), 0644), assert.AnError)
	_, err := m.ReadFile("/d/f")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestMemoryFS_ChmodAndRemove(t *testing.T) {
	m := NewMemoryFS()
	require.NoError(t, m.MkdirAll("/d", 0755))
	require.NoError(t, m.WriteFile("/d/f", nil, 0644))

	require.NoError(t, m.Chmod("/d/f", 0755))
	assert.Equal(t, fs.FileMode(0755), m.Mode("/d/f"))

	require.NoError(t, m.Remove("/d/f"))
	assert.False(t, m.Exists("/d/f"))
	assert.Error(t, m.Remove("/d/f"))
}

func TestMemoryFS_WriteCountTracksMutations(t *testing.T) {
	m := NewMemoryFS()
	before := m.WriteCount()

	require.NoError(t, m.MkdirAll("/d", 0755))
	require.NoError(t, m.WriteFile("/d/f", nil, 0644))

	assert.Equal(t, before+2, m.WriteCount())
}
