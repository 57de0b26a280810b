// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/runoshun/timers/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
	mu      sync.Mutex
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.NowTime
}

// Advance moves the clock forward.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NowTime = m.NowTime.Add(d)
}

// RecordingNotifier collects notifications.
type RecordingNotifier struct {
	notes []domain.Notification
	mu    sync.Mutex
}

// Notify records n.
func (r *RecordingNotifier) Notify(n domain.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, n)
}

// All returns a copy of the recorded notifications.
func (r *RecordingNotifier) All() []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Notification(nil), r.notes...)
}

// Count returns how many notifications of kind were recorded.
func (r *RecordingNotifier) Count(kind domain.NotificationKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, note := range r.notes {
		if note.Kind == kind {
			n++
		}
	}
	return n
}

// MemoryStateRepository is an in-memory domain.StateRepository.
// Fields are ordered to minimize memory padding.
type MemoryStateRepository struct {
	LoadErr error
	SaveErr error
	State   domain.State
	Saves   int
	mu      sync.Mutex
}

// Load returns the stored state.
func (m *MemoryStateRepository) Load() (domain.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return domain.State{}, m.LoadErr
	}
	return m.State.Clone(), nil
}

// Save stores state.
func (m *MemoryStateRepository) Save(state domain.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.State = state.Clone()
	m.Saves++
	return nil
}

// Saved returns the last saved state.
func (m *MemoryStateRepository) Saved() domain.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.State
}

// MockPreferenceStore is an in-memory domain.PreferenceStore.
type MockPreferenceStore struct {
	Values map[string]string
	GetErr error
	SetErr error
}

// NewMockPreferenceStore creates an empty MockPreferenceStore.
func NewMockPreferenceStore() *MockPreferenceStore {
	return &MockPreferenceStore{Values: make(map[string]string)}
}

// Get returns the value for key.
func (m *MockPreferenceStore) Get(key string) (string, bool, error) {
	if m.GetErr != nil {
		return "", false, m.GetErr
	}
	v, ok := m.Values[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *MockPreferenceStore) Set(key, value string) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Values[key] = value
	return nil
}

// MockExporter records export requests.
type MockExporter struct {
	Err      error
	Location string
	Requests []domain.ExportRequest
}

// Export records req and returns the configured result.
func (m *MockExporter) Export(_ context.Context, req domain.ExportRequest) (string, error) {
	m.Requests = append(m.Requests, req)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Location, nil
}

// LogEntry is one line captured by MockLogger.
type LogEntry struct {
	Level    string
	TimerID  string
	Category string
	Msg      string
}

// MockLogger captures log calls.
type MockLogger struct {
	entries []LogEntry
	mu      sync.Mutex
}

func (m *MockLogger) add(level, timerID, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, LogEntry{Level: level, TimerID: timerID, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(timerID, category, msg string) { m.add("debug", timerID, category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(timerID, category, msg string) { m.add("info", timerID, category, msg) }

// Warn records a warn entry.
func (m *MockLogger) Warn(timerID, category, msg string) { m.add("warn", timerID, category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(timerID, category, msg string) { m.add("error", timerID, category, msg) }

// Entries returns a copy of the captured entries.
func (m *MockLogger) Entries() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]LogEntry(nil), m.entries...)
}

// HasLevel reports whether any entry was logged at level.
func (m *MockLogger) HasLevel(level string) bool {
	for _, e := range m.Entries() {
		if e.Level == level {
			return true
		}
	}
	return false
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitErr  error
	FileInfo domain.ConfigInfo
	Inits    int
}

// NewMockConfigManager creates a MockConfigManager for a non-existent file.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{FileInfo: domain.ConfigInfo{Path: "/test/timers/config.toml"}}
}

// Path returns the configured path.
func (m *MockConfigManager) Path() string { return m.FileInfo.Path }

// Info returns the configured info.
func (m *MockConfigManager) Info() domain.ConfigInfo { return m.FileInfo }

// Init records the call and returns InitErr.
func (m *MockConfigManager) Init() error {
	m.Inits++
	return m.InitErr
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// NewMockConfigLoader creates a MockConfigLoader returning defaults.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{Config: domain.NewDefaultConfig()}
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}
