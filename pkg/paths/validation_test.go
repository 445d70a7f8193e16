package paths_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vladcraftcom/presetforge/pkg/errors"
	"github.com/vladcraftcom/presetforge/pkg/paths"
)

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "myproject", false},
		{"with digits", "project2", false},
		{"with separators", "my-cool_project.v2", false},
		{"single char", "x", false},
		{"max length", "a" + strings.Repeat("b", 63), false},
		{"empty", "", true},
		{"too long", "a" + strings.Repeat("b", 64), true},
		{"leading dot", ".hidden", true},
		{"leading dash", "-flag", true},
		{"trailing dot", "name.", true},
		{"contains space", "my project", true},
		{"contains slash", "a/b", true},
		{"traversal", "../escape", true},
		{"reserved con", "CON", true},
		{"reserved con with extension", "con.txt", true},
		{"reserved com port", "COM1", true},
		{"reserved lpt", "lpt9", true},
		{"not quite reserved", "console", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := paths.ValidateProjectName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSanitizePath(t *testing.T) {
	assert.Equal(t, "/a/b", paths.SanitizePath("/a//b/"))
	assert.Equal(t, "/a", paths.SanitizePath("/a/b/.."))
	assert.Equal(t, ".", paths.SanitizePath(""))
}
