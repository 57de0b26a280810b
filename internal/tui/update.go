package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/timers/internal/usecase"
)

// errExportFailed is shown when the exporter failed; details are in the log.
var errExportFailed = errors.New("export failed; see the log for details")

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateLayoutSizes()
		return m, nil

	case MsgStateChanged:
		m.state = msg.State
		m.pruneFilter()
		m.rebuildRows()
		m.refreshHistory()
		return m, waitForState(m.states)

	case MsgNotification:
		m.setNotice(msg.Notification.String())
		return m, waitForNotification(m.notes)

	case MsgTimerAdded:
		m.form.Reset()
		m.mode = ModeNormal
		m.route = RouteMain
		m.setNotice(fmt.Sprintf("Created %s in %s", msg.Timer.Name, msg.Timer.Category))
		return m, nil

	case MsgFormInvalid:
		m.form.err = msg.Err
		return m, nil

	case MsgThemeChanged:
		m.applyTheme(msg.Theme)
		return m, nil

	case MsgExported:
		if msg.Exported {
			m.setNotice(fmt.Sprintf("Exported %d record(s) to %s", msg.Records, msg.Location))
		} else {
			m.err = errExportFailed
		}
		return m, nil

	case MsgInfo:
		m.setNotice(msg.Text)
		return m, nil

	case MsgError:
		m.err = msg.Err
		return m, nil

	case MsgClearError:
		m.err = nil
		return m, nil
	}

	return m, nil
}

// updateLayoutSizes resizes the components that depend on the window size.
func (m *Model) updateLayoutSizes() {
	m.history.Width = max(20, m.width-4)
	m.history.Height = max(5, m.height-6)
	m.bar.Width = max(10, min(40, m.width/4))
	m.refreshHistory()
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key dismisses the current error.
	m.err = nil

	switch m.mode {
	case ModeAdd:
		return m.handleAddMode(msg)
	case ModeFilter:
		return m.handleFilterMode(msg)
	case ModeHelp:
		if key.Matches(msg, m.keys.Escape, m.keys.Help, m.keys.Quit) {
			m.mode = ModeNormal
		}
		return m, nil
	case ModeNormal:
	}

	// Keys shared by both routes
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	case key.Matches(msg, m.keys.History):
		if m.route == RouteMain {
			m.route = RouteHistory
			m.refreshHistory()
		} else {
			m.route = RouteMain
		}
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		return m, m.toggleTheme()
	case key.Matches(msg, m.keys.Export):
		return m, m.exportHistory()
	}

	if m.route == RouteHistory {
		return m.handleHistoryRoute(msg)
	}
	return m.handleMainRoute(msg)
}

// handleMainRoute handles keys on the timer list.
func (m *Model) handleMainRoute(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		r, ok := m.currentRow()
		if !ok {
			return m, nil
		}
		if r.isHeader() {
			m.collapsed[r.category] = !m.collapsed[r.category]
			m.rebuildRows()
			return m, nil
		}
		if t, found := m.state.Timer(r.timerID); found && t.IsCompleted {
			return m, func() tea.Msg { return MsgInfo{Text: t.Name + " is completed; press r to reset"} }
		}
		return m, m.controlTimer(r.timerID, usecase.ControlToggle)

	case key.Matches(msg, m.keys.Reset):
		if t, ok := m.SelectedTimer(); ok {
			return m, m.controlTimer(t.ID, usecase.ControlReset)
		}
		return m, nil

	case key.Matches(msg, m.keys.BulkStart):
		return m, m.bulkForSelection("start")
	case key.Matches(msg, m.keys.BulkPause):
		return m, m.bulkForSelection("pause")
	case key.Matches(msg, m.keys.BulkReset):
		return m, m.bulkForSelection("reset")

	case key.Matches(msg, m.keys.New):
		m.form.Reset()
		if category := m.SelectedCategory(); category != "" {
			m.form.category.SetValue(category)
		}
		m.mode = ModeAdd
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		if len(m.state.Categories()) > 0 {
			m.mode = ModeFilter
		}
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if len(m.selected) > 0 {
			m.selected = nil
			m.rebuildRows()
		}
		return m, nil
	}
	return m, nil
}

// bulkForSelection returns the bulk command for the category under the cursor.
func (m *Model) bulkForSelection(op string) tea.Cmd {
	category := m.SelectedCategory()
	if category == "" {
		return nil
	}
	return m.bulkControl(category, op)
}

// handleHistoryRoute handles keys on the history screen.
func (m *Model) handleHistoryRoute(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Escape) {
		m.route = RouteMain
		return m, nil
	}
	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

// handleFilterMode handles category chip selection.
func (m *Model) handleFilterMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	categories := m.state.Categories()
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Submit), key.Matches(msg, m.keys.Filter):
		m.mode = ModeNormal
	case key.Matches(msg, m.keys.Left):
		if m.chipCursor > 0 {
			m.chipCursor--
		}
	case key.Matches(msg, m.keys.Right):
		if m.chipCursor < len(categories)-1 {
			m.chipCursor++
		}
	case msg.Type == tea.KeySpace:
		if m.chipCursor < len(categories) {
			m.toggleCategory(categories[m.chipCursor])
		}
	}
	return m, nil
}

// handleAddMode handles the new timer form.
func (m *Model) handleAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.form.Reset()
		m.mode = ModeNormal
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m, m.addTimer(m.form.Input())
	case key.Matches(msg, m.keys.NextField):
		m.form.Next()
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.form.Prev()
		return m, nil
	case m.form.focus == fieldHalfway && msg.Type == tea.KeySpace:
		m.form.ToggleHalfway()
		return m, nil
	}

	m.form.err = nil
	return m, m.form.Update(msg)
}
