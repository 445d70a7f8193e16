package paths

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/vladcraftcom/presetforge/pkg/errors"
)

// projectNamePattern is the filesystem-safety contract for project names.
// Callers are expected to validate before invoking the materializer; the
// core re-checks defensively.
var projectNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,63}$`)

// reservedNames are Windows device names that cannot be used as file or
// directory names on that platform. Rejected everywhere so presets stay
// portable.
var reservedNames = map[string]struct{}{
	"con": {}, "prn": {}, "aux": {}, "nul": {},
	"com1": {}, "com2": {}, "com3": {}, "com4": {}, "com5": {},
	"com6": {}, "com7": {}, "com8": {}, "com9": {},
	"lpt1": {}, "lpt2": {}, "lpt3": {}, "lpt4": {}, "lpt5": {},
	"lpt6": {}, "lpt7": {}, "lpt8": {}, "lpt9": {},
}

// ValidateProjectName ensures a project name is safe to use as a directory
// name. Names must:
// - Start with a letter or digit
// - Contain only letters, digits, dots, underscores and hyphens
// - Be at most 64 characters
// - Not end with a dot or space
// - Not be a reserved device name
func ValidateProjectName(name string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "project name cannot be empty")
	}

	if !projectNamePattern.MatchString(name) {
		return errors.Newf(errors.ErrInvalidInput,
			"project name %q must match %s", name, projectNamePattern.String())
	}

	if strings.HasSuffix(name, ".") || strings.HasSuffix(name, " ") {
		return errors.Newf(errors.ErrInvalidInput,
			"project name %q cannot end with a dot or space", name)
	}

	base := strings.ToLower(name)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	if _, reserved := reservedNames[base]; reserved {
		return errors.Newf(errors.ErrInvalidInput,
			"project name %q is a reserved device name", name)
	}

	return nil
}

// SanitizePath cleans a user-supplied path: expands a leading ~, resolves
// . and .. elements and removes redundant separators.
func SanitizePath(path string) string {
	path = expandHome(path)

	cleaned := filepath.Clean(path)
	if cleaned == "" {
		return "."
	}
	return cleaned
}

// expandHome replaces a leading ~ with the user's home directory
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
