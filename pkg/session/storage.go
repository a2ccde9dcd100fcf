package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Storage is the durable key-value surface the store persists into. Values
// are opaque text; Load reports absence separately from failure so a missing
// key can seed a fresh state without logging an error.
type Storage interface {
	// Load returns the stored value for key, or found=false if the key has
	// never been saved.
	Load(key string) (value string, found bool, err error)

	// Save durably stores value under key, replacing any previous value.
	Save(key, value string) error
}

// FileStorage implements Storage with one file per key inside a directory,
// written atomically via a temp file and rename.
type FileStorage struct {
	dir string
	mu  sync.Mutex
}

// NewFileStorage creates a file-backed storage rooted at dir. If dir is
// empty, it defaults to ~/.architect.
func NewFileStorage(dir string) (*FileStorage, error) {
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		dir = filepath.Join(homeDir, ".architect")
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &FileStorage{dir: dir}, nil
}

// Dir returns the directory backing this storage.
func (f *FileStorage) Dir() string {
	return f.dir
}

func (f *FileStorage) pathFor(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Load reads the value stored under key.
func (f *FileStorage) Load(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.pathFor(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read %s: %w", f.pathFor(key), err)
	}
	return string(data), true, nil
}

// Save writes value under key atomically.
func (f *FileStorage) Save(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := f.pathFor(key)
	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, []byte(value), 0600); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// MemoryStorage is an in-memory Storage used in tests and ephemeral runs.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

// Load returns the stored value for key.
func (m *MemoryStorage) Load(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Save stores value under key.
func (m *MemoryStorage) Save(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
