package types

import "io/fs"

// FS provides filesystem operations that can be mocked for testing.
// All presetforge file manipulation goes through this interface so the
// materializer and ingestor can be exercised against an in-memory
// implementation.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Other operations
	Remove(name string) error
	Chmod(name string, mode fs.FileMode) error
}

// PathProvider resolves and persists the presets directory location.
// Implementations own the "where are my presets" question (environment
// variable, config file); the core never reads process-wide state directly.
type PathProvider interface {
	// Load returns the persisted presets directory, if any
	Load() (string, bool)

	// Save persists the presets directory for future runs
	Save(path string) error
}
