package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusLineInfo contains information for rendering the status line.
// Fields are ordered to minimize memory padding.
type StatusLineInfo struct {
	Message  string // Notice or error text (empty = none)
	KeyHints []KeyHint
	Route    Route
	IsError  bool
}

// KeyHint represents a key and its description.
type KeyHint struct {
	Key  string
	Desc string
}

// StatusLine renders a unified status line at the bottom of the screen.
// Fields are ordered to minimize memory padding.
type StatusLine struct {
	styles *Styles
	width  int
}

// NewStatusLine creates a new StatusLine with the given width and styles.
func NewStatusLine(width int, styles *Styles) *StatusLine {
	return &StatusLine{
		width:  width,
		styles: styles,
	}
}

// SetWidth updates the status line width.
func (s *StatusLine) SetWidth(width int) {
	s.width = width
}

// Render renders the status line with the given info.
func (s *StatusLine) Render(info StatusLineInfo) string {
	keyStyle := s.styles.FooterKey

	// Build key hints
	hints := make([]string, 0, len(info.KeyHints))
	for _, h := range info.KeyHints {
		hints = append(hints, keyStyle.Render(h.Key)+" "+h.Desc)
	}
	content := strings.Join(hints, "  ")

	// Route indicator on the right
	rightContent := s.styles.Muted.Render(strings.ToLower(info.Route.String()))

	contentWidth := s.width - 2 // Account for padding
	rightLen := lipgloss.Width(rightContent)
	contentLen := lipgloss.Width(content)

	// Truncate content if needed
	maxContentWidth := contentWidth - rightLen - 2
	if contentLen > maxContentWidth {
		if maxContentWidth <= 3 {
			content = "..."
		} else {
			truncateStyle := lipgloss.NewStyle().MaxWidth(maxContentWidth - 3)
			content = truncateStyle.Render(content) + "..."
		}
		contentLen = lipgloss.Width(content)
	}

	spacing := max(1, contentWidth-contentLen-rightLen)
	line := s.styles.Footer.Width(s.width).Render(content + strings.Repeat(" ", spacing) + rightContent)

	if info.Message == "" {
		return line
	}
	msgStyle := s.styles.Notice
	if info.IsError {
		msgStyle = s.styles.ErrorMsg
	}
	return lipgloss.JoinVertical(lipgloss.Left, msgStyle.Render(info.Message), line)
}

// GetStatusInfo returns status line info for the TUI model.
func (m *Model) GetStatusInfo() StatusLineInfo {
	info := StatusLineInfo{Route: m.route}

	switch {
	case m.err != nil:
		info.Message = "Error: " + m.err.Error()
		info.IsError = true
	case m.visibleNotice() != "":
		info.Message = m.visibleNotice()
	}

	switch m.mode {
	case ModeAdd:
		info.KeyHints = []KeyHint{
			{Key: "tab", Desc: "next"},
			{Key: "enter", Desc: "save"},
			{Key: "esc", Desc: "cancel"},
		}
	case ModeFilter:
		info.KeyHints = []KeyHint{
			{Key: "←/→", Desc: "move"},
			{Key: "space", Desc: "select"},
			{Key: "enter", Desc: "done"},
		}
	case ModeHelp:
		info.KeyHints = []KeyHint{
			{Key: "esc", Desc: "close"},
		}
	case ModeNormal:
		if m.route == RouteHistory {
			info.KeyHints = []KeyHint{
				{Key: "j/k", Desc: "scroll"},
				{Key: "e", Desc: "export"},
				{Key: "tab", Desc: "timers"},
				{Key: "q", Desc: "quit"},
			}
			return info
		}
		info.KeyHints = []KeyHint{
			{Key: "j/k", Desc: "nav"},
			{Key: "space", Desc: "start/pause"},
			{Key: "r", Desc: "reset"},
			{Key: "n", Desc: "new"},
			{Key: "f", Desc: "filter"},
			{Key: "tab", Desc: "history"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		}
	}

	return info
}
