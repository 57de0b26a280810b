package config

import (
	"os"
	"path/filepath"

	"github.com/runoshun/timers/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages the config file.
type Manager struct {
	dataDir string // Path to the timers data directory
}

// NewManager creates a new Manager.
func NewManager(dataDir string) *Manager {
	return &Manager{dataDir: dataDir}
}

// Path returns the config file path.
func (m *Manager) Path() string {
	return domain.ConfigPath(m.dataDir)
}

// Info returns information about the config file.
func (m *Manager) Info() domain.ConfigInfo {
	path := m.Path()
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// Init creates the config file from the default template.
func (m *Manager) Init() error {
	path := m.Path()

	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return domain.ErrConfigExists
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(domain.ConfigTemplate()), 0o600)
}
