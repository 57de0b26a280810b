package domain

// ThemePreferenceKey is the preference key the display mode is stored under.
const ThemePreferenceKey = "theme"

// ThemeMode selects the light or dark token set.
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// ParseThemeMode parses "light" or "dark".
func ParseThemeMode(s string) (ThemeMode, error) {
	switch ThemeMode(s) {
	case ThemeLight, ThemeDark:
		return ThemeMode(s), nil
	default:
		return "", ErrInvalidTheme
	}
}

// Toggle returns the other mode.
func (m ThemeMode) Toggle() ThemeMode {
	if m == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Theme is a read-only set of color tokens.
type Theme struct {
	Mode         ThemeMode
	Background   string
	Card         string
	Text         string
	Accent       string
	Border       string
	Muted        string
	Chip         string
	ChipSelected string
}

// LightTheme is the light token set.
var LightTheme = Theme{
	Mode:         ThemeLight,
	Background:   "#F6F8FA",
	Card:         "#FFFFFF",
	Text:         "#22223B",
	Accent:       "#4F8EF7",
	Border:       "#E2E8F0",
	Muted:        "#6B7280",
	Chip:         "#E0E7FF",
	ChipSelected: "#4F8EF7",
}

// DarkTheme is the dark token set.
var DarkTheme = Theme{
	Mode:         ThemeDark,
	Background:   "#181A1B",
	Card:         "#23272F",
	Text:         "#F3F4F6",
	Accent:       "#4F8EF7",
	Border:       "#2D3748",
	Muted:        "#A0AEC0",
	Chip:         "#23272F",
	ChipSelected: "#4F8EF7",
}

// ThemeFor returns the token set for a mode. Unknown modes get the light set.
func ThemeFor(mode ThemeMode) Theme {
	if mode == ThemeDark {
		return DarkTheme
	}
	return LightTheme
}
