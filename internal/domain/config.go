package domain

import (
	_ "embed"
	"time"
)

//go:embed config_template.toml
var configTemplateContent string

// DefaultTickInterval is the countdown tick period.
const DefaultTickInterval = time.Second

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string     `toml:"-"`
	Log      LogConfig    `toml:"log"`
	Engine   EngineConfig `toml:"engine"`
	UI       UIConfig     `toml:"ui"`
	Export   ExportConfig `toml:"export"`
	Notify   NotifyConfig `toml:"notify"`
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// EngineConfig holds countdown settings from [engine] section.
type EngineConfig struct {
	TickInterval time.Duration `toml:"-"` // Parsed from tick_interval
}

// UIConfig holds display settings from [ui] section.
type UIConfig struct {
	Theme ThemeMode `toml:"theme,omitempty"` // Default theme when no preference is saved
}

// ExportConfig holds history export settings from [export] section.
type ExportConfig struct {
	Format ExportFormat `toml:"format,omitempty"` // json or yaml
	Dir    string       `toml:"dir,omitempty"`    // Output directory (empty = data dir/exports)
}

// NotifyConfig holds settings from the [notify] section.
type NotifyConfig struct {
	Command []string `toml:"command,omitempty"` // argv template run per notification (empty = none)
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Log:    LogConfig{Level: "info"},
		Engine: EngineConfig{TickInterval: DefaultTickInterval},
		UI:     UIConfig{Theme: ThemeLight},
		Export: ExportConfig{Format: ExportFormatJSON},
	}
}

// ConfigTemplate returns the commented default config file.
func ConfigTemplate() string {
	return configTemplateContent
}
