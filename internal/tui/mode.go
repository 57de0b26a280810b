// Package tui provides the terminal user interface for timers.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal Mode = iota // Default navigation mode
	ModeAdd                // New timer form
	ModeFilter             // Category chip selection
	ModeHelp               // Help overlay mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeAdd:
		return "add"
	case ModeFilter:
		return "filter"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeAdd:
		return true
	case ModeNormal, ModeFilter, ModeHelp:
		return false
	}
	return false
}

// Route is the screen being shown.
type Route int

const (
	RouteMain    Route = iota // Timer list
	RouteHistory              // Completed timers by day
)

// String returns the screen title of the route.
func (r Route) String() string {
	switch r {
	case RouteMain:
		return "Main"
	case RouteHistory:
		return "History"
	default:
		return "unknown"
	}
}
