package tui

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/timers/internal/app"
	"github.com/runoshun/timers/internal/domain"
	"github.com/runoshun/timers/internal/usecase"
)

// noticeTTL is how long a notification stays in the status line.
const noticeTTL = 5 * time.Second

// row is one selectable line of the Main route: a category header, or a
// timer when timerID is set.
type row struct {
	category string
	timerID  string
}

func (r row) isHeader() bool { return r.timerID == "" }

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	states    <-chan domain.State
	notes     <-chan domain.Notification
	err       error

	// State (slices and maps - contain pointers)
	state     domain.State
	rows      []row
	selected  []string        // Category filter; empty shows every category
	collapsed map[string]bool // Folded category groups
	notice    string

	// Components (structs with pointers)
	keys     KeyMap
	styles   Styles
	help     help.Model
	bar      progress.Model
	history  viewport.Model
	form     addForm
	noticeAt time.Time

	// Numeric state (smaller types last)
	mode       Mode
	route      Route
	cursor     int
	chipCursor int
	width      int
	height     int
}

// New creates a new TUI Model with the given container. It subscribes to
// store states and notifications; the subscriptions end when the container
// is closed.
func New(c *app.Container) *Model {
	theme := domain.ThemeFor(c.ThemeUseCase().Current())
	styles := NewStyles(theme)

	m := &Model{
		container: c,
		states:    c.Store.Subscribe(1),
		notes:     c.Notifications.Subscribe(16),
		state:     c.Store.Snapshot(),
		collapsed: make(map[string]bool),
		keys:      DefaultKeyMap(),
		styles:    styles,
		help:      help.New(),
		bar:       newProgressBar(theme),
		history:   viewport.New(60, 20),
		form:      newAddForm(),
		mode:      ModeNormal,
		route:     RouteMain,
	}
	m.rebuildRows()
	m.refreshHistory()
	return m
}

func newProgressBar(theme domain.Theme) progress.Model {
	return progress.New(
		progress.WithSolidFill(theme.Accent),
		progress.WithoutPercentage(),
		progress.WithWidth(20),
	)
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		waitForState(m.states),
		waitForNotification(m.notes),
	)
}

// waitForState returns a command that delivers the next published state.
func waitForState(ch <-chan domain.State) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return MsgStateChanged{State: s}
	}
}

// waitForNotification returns a command that delivers the next notification.
func waitForNotification(ch <-chan domain.Notification) tea.Cmd {
	return func() tea.Msg {
		n, ok := <-ch
		if !ok {
			return nil
		}
		return MsgNotification{Notification: n}
	}
}

// groups returns the visible category groups.
func (m *Model) groups() []usecase.TimerGroup {
	return usecase.GroupTimers(m.state, m.selected)
}

// rebuildRows recomputes the selectable rows, keeping the cursor on the
// same row when it still exists.
func (m *Model) rebuildRows() {
	var current row
	hadCurrent := m.cursor >= 0 && m.cursor < len(m.rows)
	if hadCurrent {
		current = m.rows[m.cursor]
	}

	rows := make([]row, 0, len(m.state.Timers)+4)
	for _, g := range m.groups() {
		rows = append(rows, row{category: g.Category})
		if m.collapsed[g.Category] {
			continue
		}
		for _, t := range g.Timers {
			rows = append(rows, row{category: g.Category, timerID: t.ID})
		}
	}
	m.rows = rows

	if hadCurrent {
		if i := slices.Index(rows, current); i >= 0 {
			m.cursor = i
			return
		}
	}
	m.cursor = max(0, min(m.cursor, len(rows)-1))
}

// currentRow returns the row under the cursor.
func (m *Model) currentRow() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

// SelectedTimer returns the timer under the cursor.
func (m *Model) SelectedTimer() (domain.Timer, bool) {
	r, ok := m.currentRow()
	if !ok || r.isHeader() {
		return domain.Timer{}, false
	}
	return m.state.Timer(r.timerID)
}

// SelectedCategory returns the category of the row under the cursor.
func (m *Model) SelectedCategory() string {
	r, _ := m.currentRow()
	return r.category
}

// toggleCategory adds or removes a category from the filter.
func (m *Model) toggleCategory(category string) {
	if i := slices.Index(m.selected, category); i >= 0 {
		m.selected = slices.Delete(m.selected, i, i+1)
	} else {
		m.selected = append(m.selected, category)
	}
	m.rebuildRows()
}

// pruneFilter drops filter entries for categories that no longer exist.
func (m *Model) pruneFilter() {
	categories := m.state.Categories()
	m.selected = slices.DeleteFunc(m.selected, func(c string) bool {
		return !slices.Contains(categories, c)
	})
	m.chipCursor = max(0, min(m.chipCursor, len(categories)-1))
}

// applyTheme rebuilds the styles for theme.
func (m *Model) applyTheme(theme domain.Theme) {
	m.styles = NewStyles(theme)
	m.bar = newProgressBar(theme)
	m.refreshHistory()
}

// setNotice shows text in the status line.
func (m *Model) setNotice(text string) {
	m.notice = text
	m.noticeAt = time.Now()
}

// visibleNotice returns the notice while it is fresh.
func (m *Model) visibleNotice() string {
	if m.notice == "" || time.Since(m.noticeAt) > noticeTTL {
		return ""
	}
	return m.notice
}

// Commands

// controlTimer returns a command that applies op to a timer.
func (m *Model) controlTimer(id string, op usecase.ControlOp) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.ControlTimerUseCase().Execute(context.Background(), usecase.ControlTimerInput{
			TimerID: id,
			Op:      op,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		// The new state arrives through the store subscription.
		return nil
	}
}

// bulkControl returns a command that applies op to a category.
func (m *Model) bulkControl(category, op string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.BulkControlUseCase().Execute(context.Background(), usecase.BulkControlInput{
			Category: category,
			Op:       op,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		if len(out.Affected) == 0 {
			return MsgInfo{Text: fmt.Sprintf("No timers in %s to %s", category, op)}
		}
		return nil
	}
}

// addTimer returns a command that saves the form.
func (m *Model) addTimer(in usecase.AddTimerInput) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.AddTimerUseCase().Execute(context.Background(), in)
		if err != nil {
			return MsgFormInvalid{Err: err}
		}
		return MsgTimerAdded{Timer: out.Timer}
	}
}

// toggleTheme returns a command that switches and saves the theme.
func (m *Model) toggleTheme() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ThemeUseCase().Execute(context.Background(), usecase.ThemeInput{Toggle: true})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgThemeChanged{Theme: out.Theme}
	}
}

// exportHistory returns a command that exports the history with the
// configured format.
func (m *Model) exportHistory() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ExportHistoryUseCase(nil).Execute(context.Background(), usecase.ExportHistoryInput{
			Format: m.container.AppConfig.Export.Format,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgExported{Location: out.Location, Records: out.Records, Exported: out.Exported}
	}
}
