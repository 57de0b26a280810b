// Package statefile provides a JSON file-based implementation of StateRepository.
package statefile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/runoshun/timers/internal/domain"
)

// Ensure Store implements StateRepository.
var _ domain.StateRepository = (*Store)(nil)

// fileData represents the JSON file structure.
// Fields are ordered to minimize memory padding.
type fileData struct {
	Timers  []domain.Timer         `json:"timers"`
	History []domain.HistoryRecord `json:"history"`
	Version int                    `json:"version"`
}

const fileVersion = 1

// Store implements domain.StateRepository using a JSON file guarded by a
// flock(2) lock file, so a TUI and a CLI invocation can share one data dir.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Load reads the persisted state. A missing file yields an empty state.
// Running flags are returned as saved; whoever owns the countdown engine
// resumes them.
func (s *Store) Load() (domain.State, error) {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return domain.State{}, err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return domain.State{}, err
	}

	return domain.State{Timers: data.Timers, History: data.History}, nil
}

// Save replaces the persisted state.
func (s *Store) Save(state domain.State) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	return s.write(&fileData{
		Version: fileVersion,
		Timers:  state.Timers,
		History: state.History,
	})
}

// Exists checks if the state file exists.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) read() (*fileData, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &fileData{Version: fileVersion}, nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}

	var data fileData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse state file: %w", err)
	}
	return &data, nil
}

func (s *Store) write(data *fileData) error {
	if data.Timers == nil {
		data.Timers = []domain.Timer{}
	}
	if data.History == nil {
		data.History = []domain.HistoryRecord{}
	}

	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
