// Package storage provides the persisted key-value capability and the
// stores built on top of it (favorites, preferences).
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hammamikhairi/recipegacha/internal/domain"
)

// Compile-time interface checks.
var (
	_ domain.KV = (*FileKV)(nil)
	_ domain.KV = (*MemoryKV)(nil)
)

// FileKV stores each key as a JSON file in one directory. Writes go
// through a temp file and rename so a crash never leaves a half-written
// value behind.
type FileKV struct {
	dir string
}

// NewFileKV creates a file-backed KV rooted at dir. The directory is
// created on first write, not here; constructing the store must never
// fail.
func NewFileKV(dir string) *FileKV {
	return &FileKV{dir: dir}
}

// Get reads the value stored under key. Returns domain.ErrNotFound when
// the key has never been written.
func (s *FileKV) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("kv: read %s: %w", key, err)
	}
	return data, nil
}

// Set durably writes the value under key.
func (s *FileKV) Set(key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("kv: create dir: %w", err)
	}
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("kv: write %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("kv: commit %s: %w", key, err)
	}
	return nil
}

func (s *FileKV) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// MemoryKV is an in-memory KV for tests and ephemeral runs. Safe for
// concurrent use.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryKV creates an empty in-memory KV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string][]byte)}
}

// Get returns the value under key, or domain.ErrNotFound.
func (s *MemoryKV) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Set stores a copy of value under key.
func (s *MemoryKV) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := make([]byte, len(value))
	copy(v, value)
	s.values[key] = v
	return nil
}
