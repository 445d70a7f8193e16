// Package paths answers the "where are my presets" question and owns
// filesystem-name validation.
//
// The presets directory location is resolved in order: the
// PRESETFORGE_PRESETS_DIR environment variable, the persisted config file
// under the XDG config directory, and finally the platform default under the
// user's Documents directory. The Provider type implements
// types.PathProvider so the resolution strategy stays injectable.
package paths
