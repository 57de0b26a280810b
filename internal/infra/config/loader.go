// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/timers/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from the TOML file in the data directory.
type Loader struct {
	dataDir string // Path to the timers data directory
}

// NewLoader creates a new Loader.
func NewLoader(dataDir string) *Loader {
	return &Loader{dataDir: dataDir}
}

// Load returns the default configuration overlaid with the config file.
// A missing file is not an error. Unknown keys are reported in Config.Warnings.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	file, err := l.loadFile(domain.ConfigPath(l.dataDir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return nil, err
	}

	return mergeConfigs(base, file), nil
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg, err := convertRawToDomainConfig(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
// Zero values mean "not set" and are filled from defaults by mergeConfigs.
func convertRawToDomainConfig(raw map[string]any) (*domain.Config, error) {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}

		switch section {
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = strings.ToLower(s)
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		case "engine":
			for k, v := range m {
				switch k {
				case "tick_interval":
					s, _ := v.(string)
					d, err := time.ParseDuration(s)
					if err != nil || d <= 0 {
						return nil, fmt.Errorf("invalid [engine] tick_interval %q: want a positive duration such as \"1s\"", s)
					}
					res.Engine.TickInterval = d
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [engine]: %s", k))
				}
			}
		case "ui":
			for k, v := range m {
				switch k {
				case "theme":
					s, _ := v.(string)
					mode, err := domain.ParseThemeMode(s)
					if err != nil {
						return nil, fmt.Errorf("[ui] theme: %w", err)
					}
					res.UI.Theme = mode
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [ui]: %s", k))
				}
			}
		case "export":
			for k, v := range m {
				switch k {
				case "format":
					s, _ := v.(string)
					format := domain.ExportFormat(strings.ToLower(s))
					if !format.IsValid() {
						return nil, fmt.Errorf("[export] format: %w", domain.ErrInvalidExportFormat)
					}
					res.Export.Format = format
				case "dir":
					if s, ok := v.(string); ok {
						res.Export.Dir = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [export]: %s", k))
				}
			}
		case "notify":
			for k, v := range m {
				switch k {
				case "command":
					argv, err := stringList(v)
					if err != nil {
						return nil, fmt.Errorf("[notify] command: %w", err)
					}
					res.Notify.Command = argv
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [notify]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res, nil
}

// stringList converts a TOML array of strings.
func stringList(v any) ([]string, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, errors.New("want an array of strings")
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, errors.New("want an array of strings")
		}
		out = append(out, s)
	}
	return out, nil
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := *base
	if len(base.Warnings)+len(override.Warnings) > 0 {
		result.Warnings = append(append([]string{}, base.Warnings...), override.Warnings...)
	}

	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Engine.TickInterval > 0 {
		result.Engine.TickInterval = override.Engine.TickInterval
	}
	if override.UI.Theme != "" {
		result.UI.Theme = override.UI.Theme
	}
	if override.Export.Format != "" {
		result.Export.Format = override.Export.Format
	}
	if override.Export.Dir != "" {
		result.Export.Dir = override.Export.Dir
	}
	if len(override.Notify.Command) > 0 {
		result.Notify.Command = override.Notify.Command
	}

	return &result
}
