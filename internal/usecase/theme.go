package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/timers/internal/domain"
)

// ThemeInput selects the theme change to make.
type ThemeInput struct {
	Mode   string // light or dark; empty with Toggle=false only reads the current theme
	Toggle bool   // Switch to the other mode
}

// ThemeOutput contains the active theme.
type ThemeOutput struct {
	Theme   domain.Theme
	Changed bool
}

// Theme reads and persists the display mode. When no preference has been
// saved, the configured default is used.
type Theme struct {
	prefs    domain.PreferenceStore
	fallback domain.ThemeMode
}

// NewTheme creates a new Theme use case.
func NewTheme(prefs domain.PreferenceStore, fallback domain.ThemeMode) *Theme {
	if fallback == "" {
		fallback = domain.ThemeLight
	}
	return &Theme{prefs: prefs, fallback: fallback}
}

// Current returns the active mode. An unreadable or invalid preference
// falls back to the default.
func (uc *Theme) Current() domain.ThemeMode {
	v, ok, err := uc.prefs.Get(domain.ThemePreferenceKey)
	if err != nil || !ok {
		return uc.fallback
	}
	mode, err := domain.ParseThemeMode(v)
	if err != nil {
		return uc.fallback
	}
	return mode
}

// Execute applies in and returns the resulting theme.
func (uc *Theme) Execute(_ context.Context, in ThemeInput) (*ThemeOutput, error) {
	current := uc.Current()

	next := current
	switch {
	case in.Toggle:
		next = current.Toggle()
	case in.Mode != "":
		mode, err := domain.ParseThemeMode(in.Mode)
		if err != nil {
			return nil, err
		}
		next = mode
	default:
		return &ThemeOutput{Theme: domain.ThemeFor(current)}, nil
	}

	if err := uc.prefs.Set(domain.ThemePreferenceKey, string(next)); err != nil {
		return nil, fmt.Errorf("save theme: %w", err)
	}
	return &ThemeOutput{Theme: domain.ThemeFor(next), Changed: next != current}, nil
}
