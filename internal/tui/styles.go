package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/timers/internal/domain"
)

// Fixed status colors shared by both themes.
var statusColors = struct {
	Running   lipgloss.Color
	Paused    lipgloss.Color
	Completed lipgloss.Color
	Error     lipgloss.Color
}{
	Running:   lipgloss.Color("#00B894"), // Green
	Paused:    lipgloss.Color("#FDCB6E"), // Yellow
	Completed: lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
}

// Styles contains all the lipgloss styles for the TUI.
// They are derived from a theme's color tokens.
type Styles struct {
	Theme domain.Theme

	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style
	HeaderMeta lipgloss.Style

	// Category chips
	Chip         lipgloss.Style
	ChipSelected lipgloss.Style
	ChipCursor   lipgloss.Style

	// Category groups
	GroupHeader         lipgloss.Style
	GroupHeaderSelected lipgloss.Style
	GroupMeta           lipgloss.Style

	// Timers
	TimerName         lipgloss.Style
	TimerNameSelected lipgloss.Style
	TimerTime         lipgloss.Style
	CursorNormal      lipgloss.Style
	CursorSelected    lipgloss.Style

	// Phase badges
	PhaseIdle      lipgloss.Style
	PhaseRunning   lipgloss.Style
	PhasePaused    lipgloss.Style
	PhaseCompleted lipgloss.Style

	// History
	HistoryDay    lipgloss.Style
	HistoryRecord lipgloss.Style

	// Form
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style
	InputPrompt lipgloss.Style
	FieldActive lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style
	Notice    lipgloss.Style
	ErrorMsg  lipgloss.Style

	// Muted text
	Muted lipgloss.Style

	// Help
	Help lipgloss.Style
}

// NewStyles returns the styles for a theme.
func NewStyles(theme domain.Theme) Styles {
	text := lipgloss.Color(theme.Text)
	accent := lipgloss.Color(theme.Accent)
	muted := lipgloss.Color(theme.Muted)
	border := lipgloss.Color(theme.Border)
	card := lipgloss.Color(theme.Card)
	chip := lipgloss.Color(theme.Chip)
	chipSelected := lipgloss.Color(theme.ChipSelected)

	return Styles{
		Theme: theme,

		App: lipgloss.NewStyle().
			Padding(1, 2).
			Background(lipgloss.Color(theme.Background)),

		Header: lipgloss.NewStyle().
			Background(card).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(border).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true).
			Foreground(text),

		HeaderMeta: lipgloss.NewStyle().
			Foreground(muted),

		Chip: lipgloss.NewStyle().
			Padding(0, 1).
			MarginRight(1).
			Foreground(muted).
			Background(chip),

		ChipSelected: lipgloss.NewStyle().
			Padding(0, 1).
			MarginRight(1).
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(chipSelected),

		ChipCursor: lipgloss.NewStyle().
			Underline(true),

		GroupHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(text).
			Background(chip),

		GroupHeaderSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Background(chip),

		GroupMeta: lipgloss.NewStyle().
			Foreground(muted),

		TimerName: lipgloss.NewStyle().
			Foreground(text).
			Width(20),

		TimerNameSelected: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Width(20),

		TimerTime: lipgloss.NewStyle().
			Foreground(text).
			Width(10).
			Align(lipgloss.Right),

		CursorNormal: lipgloss.NewStyle().
			Foreground(muted),

		CursorSelected: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		PhaseIdle: lipgloss.NewStyle().
			Foreground(muted),

		PhaseRunning: lipgloss.NewStyle().
			Foreground(statusColors.Running).
			Bold(true),

		PhasePaused: lipgloss.NewStyle().
			Foreground(statusColors.Paused),

		PhaseCompleted: lipgloss.NewStyle().
			Foreground(statusColors.Completed).
			Strikethrough(true),

		HistoryDay: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			MarginTop(1),

		HistoryRecord: lipgloss.NewStyle().
			Foreground(text).
			PaddingLeft(2),

		Dialog: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Background(card),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			MarginBottom(1),

		InputPrompt: lipgloss.NewStyle().
			Foreground(muted).
			Width(10),

		FieldActive: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Width(10),

		Footer: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),

		FooterKey: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		Notice: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(statusColors.Error).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(muted),

		Help: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border),
	}
}

// PhaseStyle returns the badge style for a timer phase.
func (s Styles) PhaseStyle(p domain.Phase) lipgloss.Style {
	switch p {
	case domain.PhaseRunning:
		return s.PhaseRunning
	case domain.PhasePaused:
		return s.PhasePaused
	case domain.PhaseCompleted:
		return s.PhaseCompleted
	default:
		return s.PhaseIdle
	}
}
