package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Timer actions
	Toggle key.Binding // Start/pause the selected timer, or fold a category
	Reset  key.Binding // Reset the selected timer
	New    key.Binding // Open the new timer form

	// Category actions
	BulkStart key.Binding
	BulkPause key.Binding
	BulkReset key.Binding
	Filter    key.Binding // Select category chips

	// View
	History key.Binding // Switch between Main and History
	Theme   key.Binding // Toggle light/dark
	Export  key.Binding // Export history
	Help    key.Binding

	// Chip selection and form navigation
	Left      key.Binding
	Right     key.Binding
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding

	// General
	Quit   key.Binding // Quit application
	Escape key.Binding // Cancel/back
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new timer"),
		),
		BulkStart: key.NewBinding(
			key.WithKeys("B"),
			key.WithHelp("B", "start category"),
		),
		BulkPause: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "pause category"),
		),
		BulkReset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset category"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f", "/"),
			key.WithHelp("f", "filter"),
		),
		History: key.NewBinding(
			key.WithKeys("tab", "H"),
			key.WithHelp("tab", "history"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

// ShortHelp returns keybindings to show in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Reset, k.New, k.History, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Reset, k.New},           // Timers
		{k.BulkStart, k.BulkPause, k.BulkReset, k.Filter}, // Categories
		{k.History, k.Theme, k.Export, k.Help, k.Quit},    // View & general
	}
}
