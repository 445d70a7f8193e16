package testutil

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryFS implements types.FS with in-memory storage. It tracks write
// operations and supports per-path error injection so tests can assert both
// failure handling and the absence of writes.
type MemoryFS struct {
	mu    sync.RWMutex
	files map[string][]byte
	modes map[string]fs.FileMode
	dirs  map[string]bool

	// Error injection
	errorPaths map[string]error

	writeCount int
}

// NewMemoryFS creates a new in-memory filesystem with a root directory
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		files:      make(map[string][]byte),
		modes:      make(map[string]fs.FileMode),
		dirs:       map[string]bool{"/": true},
		errorPaths: make(map[string]error),
	}
}

// FailAt injects an error returned by any operation touching path
func (m *MemoryFS) FailAt(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorPaths[filepath.Clean(path)] = err
}

// WriteCount returns the number of mutating operations performed
func (m *MemoryFS) WriteCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writeCount
}

// Exists reports whether a file or directory exists
func (m *MemoryFS) Exists(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	path = filepath.Clean(path)
	_, isFile := m.files[path]
	return isFile || m.dirs[path]
}

// Mode returns the recorded mode of a file
func (m *MemoryFS) Mode(path string) fs.FileMode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.modes[filepath.Clean(path)]
}

func (m *MemoryFS) injected(path string) error {
	if err, ok := m.errorPaths[path]; ok {
		return err
	}
	return nil
}

func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = filepath.Clean(name)
	if err := m.injected(name); err != nil {
		return nil, err
	}

	if content, ok := m.files[name]; ok {
		return &memInfo{name: filepath.Base(name), size: int64(len(content)), mode: m.modes[name]}, nil
	}
	if m.dirs[name] {
		return &memInfo{name: filepath.Base(name), mode: fs.ModeDir | 0755, isDir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = filepath.Clean(name)
	if err := m.injected(name); err != nil {
		return nil, err
	}

	content, ok := m.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(content))
	copy(out, content)
	return out, nil
}

func (m *MemoryFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = filepath.Clean(name)
	if err := m.injected(name); err != nil {
		return err
	}

	parent := filepath.Dir(name)
	if !m.dirs[parent] {
		return &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}

	m.writeCount++
	m.files[name] = append([]byte(nil), data...)
	m.modes[name] = perm
	return nil
}

func (m *MemoryFS) MkdirAll(path string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = filepath.Clean(path)
	if err := m.injected(path); err != nil {
		return err
	}

	m.writeCount++
	for p := path; p != "/" && p != "."; p = filepath.Dir(p) {
		m.dirs[p] = true
	}
	return nil
}

func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = filepath.Clean(name)
	if err := m.injected(name); err != nil {
		return nil, err
	}
	if !m.dirs[name] {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}

	seen := make(map[string]fs.DirEntry)
	collect := func(path string, isDir bool, size int64) {
		rel, err := filepath.Rel(name, path)
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			return
		}
		child := strings.SplitN(rel, string(filepath.Separator), 2)[0]
		childIsDir := isDir || strings.Contains(rel, string(filepath.Separator))
		if _, ok := seen[child]; !ok || childIsDir {
			seen[child] = &memDirEntry{name: child, isDir: childIsDir, size: size}
		}
	}

	for path := range m.dirs {
		collect(path, true, 0)
	}
	for path, content := range m.files {
		collect(path, false, int64(len(content)))
	}

	var entries []fs.DirEntry
	for _, e := range seen {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

func (m *MemoryFS) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = filepath.Clean(name)
	if err := m.injected(name); err != nil {
		return err
	}

	m.writeCount++
	if _, ok := m.files[name]; ok {
		delete(m.files, name)
		delete(m.modes, name)
		return nil
	}
	if m.dirs[name] {
		delete(m.dirs, name)
		return nil
	}
	return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
}

func (m *MemoryFS) Chmod(name string, mode fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = filepath.Clean(name)
	if err := m.injected(name); err != nil {
		return err
	}
	if _, ok := m.files[name]; !ok && !m.dirs[name] {
		return &fs.PathError{Op: "chmod", Path: name, Err: fs.ErrNotExist}
	}

	m.modes[name] = mode
	return nil
}

// memInfo implements fs.FileInfo for in-memory nodes
type memInfo struct {
	name  string
	size  int64
	mode  fs.FileMode
	isDir bool
}

func (i *memInfo) Name() string       { return i.name }
func (i *memInfo) Size() int64        { return i.size }
func (i *memInfo) Mode() fs.FileMode  { return i.mode }
func (i *memInfo) ModTime() time.Time { return time.Time{} }
func (i *memInfo) IsDir() bool        { return i.isDir }
func (i *memInfo) Sys() interface{}   { return nil }

// memDirEntry implements fs.DirEntry for in-memory nodes
type memDirEntry struct {
	name  string
	isDir bool
	size  int64
}

func (e *memDirEntry) Name() string { return e.name }
func (e *memDirEntry) IsDir() bool  { return e.isDir }
func (e *memDirEntry) Type() fs.FileMode {
	if e.isDir {
		return fs.ModeDir
	}
	return 0
}
func (e *memDirEntry) Info() (fs.FileInfo, error) {
	return &memInfo{name: e.name, size: e.size, isDir: e.isDir, mode: e.Type()}, nil
}
