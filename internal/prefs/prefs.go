// Package prefs persists small client-side settings (selected network, theme,
// theme override) as a flat key-value table.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// Well-known keys.
const (
	KeyNetwork       = "network"
	KeyTheme         = "theme"
	KeyThemeOverride = "theme_override"
)

// Store is a string key-value store local to the client.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// FileStore keeps all values in a single TOML file and rewrites it on every change.
type FileStore struct {
	path   string
	mu     sync.Mutex
	values map[string]string
}

// Open loads the store at path. A missing file is an empty store.
func Open(path string) (*FileStore, error) {
	s := &FileStore{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read prefs file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &s.values); err != nil {
		return nil, fmt.Errorf("failed to parse prefs file %s: %w", path, err)
	}
	return s, nil
}

func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key. The previous value is kept when the file cannot be written.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, had := s.values[key]
	s.values[key] = value
	if err := s.flush(); err != nil {
		s.restore(key, prev, had)
		return err
	}
	return nil
}

// Delete removes key. The value is kept when the file cannot be written.
func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.values[key]
	if !ok {
		return nil
	}
	delete(s.values, key)
	if err := s.flush(); err != nil {
		s.restore(key, prev, true)
		return err
	}
	return nil
}

func (s *FileStore) restore(key, prev string, had bool) {
	if had {
		s.values[key] = prev
	} else {
		delete(s.values, key)
	}
}

// flush writes via a temp file and rename so a crash never leaves a half-written file.
func (s *FileStore) flush() error {
	data, err := toml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("failed to marshal prefs: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create prefs directory: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write prefs file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace prefs file: %w", err)
	}
	return nil
}

// MemoryStore is a non-persistent Store.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
