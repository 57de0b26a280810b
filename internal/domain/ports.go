package domain

import (
	"context"
	"time"
)

// TimerStore is the owned state container every write goes through.
type TimerStore interface {
	// Snapshot returns the current state. Callers must not mutate it.
	Snapshot() State

	// Dispatch applies action and returns the resulting state.
	Dispatch(action Action) State

	// DispatchFunc calls fn with the current state under the store lock and
	// applies the returned action when ok is true. It returns the resulting
	// state and whether an action was applied.
	DispatchFunc(fn func(State) (Action, bool)) (State, bool)
}

// StateRepository persists the store state on a best-effort basis.
type StateRepository interface {
	// Load returns the persisted state. A missing store yields an empty state.
	Load() (State, error)

	// Save replaces the persisted state.
	Save(state State) error
}

// PreferenceStore is an opaque key-value store for display preferences.
type PreferenceStore interface {
	// Get returns the value for key and whether it was set.
	Get(key string) (string, bool, error)

	// Set stores value under key.
	Set(key, value string) error
}

// Notifier receives halfway and completion notifications.
// Implementations must not block the caller.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notification) {
	f(n)
}

// ExportRequest is the payload handed to the share/export collaborator.
// Fields are ordered to minimize memory padding.
type ExportRequest struct {
	Data     []byte // Serialized history
	Title    string // Share sheet title
	Message  string // Share sheet message
	Filename string // Suggested file name
	MimeType string // Content type of Data
}

// HistoryEncoder serializes history for export.
type HistoryEncoder interface {
	Encode(format ExportFormat, history []HistoryRecord) ([]byte, error)
}

// Exporter shares serialized history with something outside the app.
type Exporter interface {
	// Export delivers the request. It returns where the data went (path or
	// description) on success.
	Export(ctx context.Context, req ExportRequest) (string, error)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the effective configuration (defaults overlaid with the file).
	Load() (*Config, error)
}

// ConfigManager manages the configuration file.
type ConfigManager interface {
	// Path returns the config file path.
	Path() string

	// Info returns the config file path and content.
	Info() ConfigInfo

	// Init writes the default config template. Returns ErrConfigExists if present.
	Init() error
}

// Logger writes categorized log lines, optionally tagged with a timer ID.
type Logger interface {
	Debug(timerID, category, msg string)
	Info(timerID, category, msg string)
	Warn(timerID, category, msg string)
	Error(timerID, category, msg string)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(_, _, _ string) {}
func (NopLogger) Info(_, _, _ string)  {}
func (NopLogger) Warn(_, _, _ string)  {}
func (NopLogger) Error(_, _, _ string) {}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time without the monotonic reading, so values
// compare equal after a persistence round trip.
func (RealClock) Now() time.Time {
	return time.Now().Round(0)
}
