package domain

import (
	"path/filepath"
	"strconv"
	"time"
)

// Directory and file names for timer data.
const (
	AppDirName      = "timers"      // Directory name under the user config home
	ConfigFileName  = "config.toml" // Config file name
	StateFileName   = "timers.json" // Persisted timers and history
	PrefsFileName   = "prefs.yaml"  // Display preferences
	LogsDirName     = "logs"        // Log directory
	GlobalLogName   = "timers.log"  // Log file name
	ExportsDirName  = "exports"     // Default export directory
	globalLogTagKey = "global"
)

// DataDir returns the data directory under a config home.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func DataDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// ConfigPath returns the config file path for a data directory.
func ConfigPath(dataDir string) string {
	return filepath.Join(dataDir, ConfigFileName)
}

// StatePath returns the state file path for a data directory.
func StatePath(dataDir string) string {
	return filepath.Join(dataDir, StateFileName)
}

// PrefsPath returns the preferences file path for a data directory.
func PrefsPath(dataDir string) string {
	return filepath.Join(dataDir, PrefsFileName)
}

// GlobalLogPath returns the path to the log file.
func GlobalLogPath(dataDir string) string {
	return filepath.Join(dataDir, LogsDirName, GlobalLogName)
}

// ExportsDir returns the default export directory.
func ExportsDir(dataDir string) string {
	return filepath.Join(dataDir, ExportsDirName)
}

// LogTag returns the log tag for a timer: timer-<id>, or global when id is empty.
func LogTag(timerID string) string {
	if timerID == "" {
		return globalLogTagKey
	}
	return "timer-" + timerID
}

// TimerID derives a timer ID from a creation time (Unix milliseconds).
func TimerID(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// NextTimerID returns id incremented by one millisecond.
// Non-numeric IDs get a "-1" suffix.
func NextTimerID(id string) string {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return id + "-1"
	}
	return strconv.FormatInt(n+1, 10)
}
