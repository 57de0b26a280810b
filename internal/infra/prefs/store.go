// Package prefs stores display preferences as a flat YAML map.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/timers/internal/domain"
)

// Ensure Store implements domain.PreferenceStore.
var _ domain.PreferenceStore = (*Store)(nil)

// Store is a key-value preference file.
type Store struct {
	path string
	mu   sync.Mutex
}

// New creates a Store backed by path. The file is created on first Set.
func New(path string) *Store {
	return &Store{path: path}
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// Set stores value under key, keeping other keys intact.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return err
	}
	values[key] = value

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create preferences directory: %w", err)
	}

	serialized, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshal preferences yaml: %w", err)
	}

	if err := os.WriteFile(s.path, serialized, 0o600); err != nil {
		return fmt.Errorf("write preferences file: %w", err)
	}
	return nil
}

func (s *Store) read() (map[string]string, error) {
	values := make(map[string]string)

	rawData, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return values, nil
		}
		return nil, fmt.Errorf("read preferences file: %w", err)
	}

	if err := yaml.Unmarshal(rawData, &values); err != nil {
		return nil, fmt.Errorf("parse preferences yaml: %w", err)
	}
	if values == nil {
		values = make(map[string]string)
	}
	return values, nil
}
