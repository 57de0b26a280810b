package tui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/timers/internal/domain"
)

// View renders the TUI.
func (m *Model) View() string {
	var body string
	switch {
	case m.mode == ModeHelp:
		body = m.viewHelp()
	case m.mode == ModeAdd:
		body = m.viewAddForm()
	case m.route == RouteHistory:
		body = m.viewHistory()
	default:
		body = m.viewMain()
	}

	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		body,
		m.viewStatusLine(),
	))
}

// viewHeader renders the title bar with the theme indicator.
func (m *Model) viewHeader() string {
	title := "Timers"
	if m.route == RouteHistory {
		title = "History"
	}
	icon := "☀"
	if m.styles.Theme.Mode == domain.ThemeDark {
		icon = "☾"
	}
	meta := m.styles.HeaderMeta.Render(fmt.Sprintf("%s %s", icon, m.styles.Theme.Mode))

	left := m.styles.HeaderText.Render(title)
	gap := max(1, m.contentWidth()-lipgloss.Width(left)-lipgloss.Width(meta))
	return m.styles.Header.Render(left + strings.Repeat(" ", gap) + meta)
}

// contentWidth returns the usable width inside the app padding.
func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 60
	}
	return max(20, m.width-4)
}

// viewMain renders the category chips and the timer groups.
func (m *Model) viewMain() string {
	if len(m.state.Timers) == 0 {
		return m.styles.Muted.Render("Try creating your first timer (press n)")
	}

	lines := []string{m.viewChips(), ""}
	groups := m.groups()
	cursorRow, _ := m.currentRow()

	for _, g := range groups {
		selected := cursorRow.isHeader() && cursorRow.category == g.Category
		lines = append(lines, m.viewGroupHeader(g.Category, g.Plan, selected))
		if m.collapsed[g.Category] {
			continue
		}
		for _, t := range g.Timers {
			selected := !cursorRow.isHeader() && cursorRow.timerID == t.ID
			lines = append(lines, m.viewTimer(t, selected))
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// viewChips renders one chip per category; selected chips are highlighted.
func (m *Model) viewChips() string {
	categories := m.state.Categories()
	chips := make([]string, 0, len(categories))
	for i, c := range categories {
		style := m.styles.Chip
		if m.isSelected(c) {
			style = m.styles.ChipSelected
		}
		if m.mode == ModeFilter && i == m.chipCursor {
			style = style.Inherit(m.styles.ChipCursor)
		}
		chips = append(chips, style.Render(c))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func (m *Model) isSelected(category string) bool {
	return slices.Contains(m.selected, category)
}

// viewGroupHeader renders a category header. Bulk hints are shown only
// while the category has incomplete timers.
func (m *Model) viewGroupHeader(category string, plan domain.BulkPlan, selected bool) string {
	fold := "▾"
	if m.collapsed[category] {
		fold = "▸"
	}
	style := m.styles.GroupHeader
	cursor := m.styles.CursorNormal.Render("  ")
	if selected {
		style = m.styles.GroupHeaderSelected
		cursor = m.styles.CursorSelected.Render("> ")
	}

	header := cursor + style.Render(fmt.Sprintf("%s %s", fold, category))
	meta := fmt.Sprintf("  %d/%d incomplete", plan.Incomplete, plan.Total)
	if plan.ShowControls() {
		meta += "  B start · P pause · R reset"
	}
	return header + m.styles.GroupMeta.Render(meta)
}

// viewTimer renders one timer line: name, progress bar, time and phase.
func (m *Model) viewTimer(t domain.Timer, selected bool) string {
	nameStyle := m.styles.TimerName
	cursor := m.styles.CursorNormal.Render("    ")
	if selected {
		nameStyle = m.styles.TimerNameSelected
		cursor = m.styles.CursorSelected.Render("  > ")
	}

	phase := t.Phase()
	alert := ""
	if t.HalfwayAlert && !t.IsCompleted {
		alert = m.styles.Muted.Render(" ½")
	}

	return cursor +
		nameStyle.Render(t.Name) + " " +
		m.bar.ViewAs(t.Progress()/100) + " " +
		m.styles.TimerTime.Render(t.StatusText()) + " " +
		m.styles.PhaseStyle(phase).Render(phase.Display()) +
		alert
}

// refreshHistory re-renders the history content into the viewport.
func (m *Model) refreshHistory() {
	m.history.SetContent(m.historyContent())
}

// historyContent renders completed timers grouped by day, newest first.
func (m *Model) historyContent() string {
	groups := domain.GroupHistoryByDay(m.state.History, nil)
	if len(groups) == 0 {
		return m.styles.Muted.Render("No completed timers yet")
	}

	var b strings.Builder
	for _, g := range groups {
		b.WriteString(m.styles.HistoryDay.Render(g.Title()))
		b.WriteString("\n")
		for _, rec := range g.Records {
			line := fmt.Sprintf("%s  %-20s %-14s %s",
				rec.CompletedAt.Local().Format("15:04"),
				rec.Name,
				rec.Category,
				formatSeconds(rec.Duration),
			)
			b.WriteString(m.styles.HistoryRecord.Render(line))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// viewHistory renders the History route.
func (m *Model) viewHistory() string {
	return m.history.View()
}

// viewAddForm renders the new timer form.
func (m *Model) viewAddForm() string {
	f := &m.form
	label := func(field formField, text string) string {
		if f.focus == field {
			return m.styles.FieldActive.Render(text)
		}
		return m.styles.InputPrompt.Render(text)
	}

	halfway := "[ ] off"
	if f.halfway {
		halfway = "[x] on"
	}

	lines := []string{
		m.styles.DialogTitle.Render("New Timer"),
		label(fieldName, "Name") + f.name.View(),
		label(fieldDuration, "Seconds") + f.duration.View(),
		label(fieldCategory, "Category") + f.category.View(),
		label(fieldHalfway, "Halfway") + halfway,
	}
	if f.err != nil {
		lines = append(lines, "", m.styles.ErrorMsg.Render(f.err.Error()))
	}
	lines = append(lines, "", m.styles.Muted.Render("tab next · space toggle halfway · enter save · esc cancel"))

	return m.styles.Dialog.Render(strings.Join(lines, "\n"))
}

// viewHelp renders the full key help.
func (m *Model) viewHelp() string {
	m.help.ShowAll = true
	defer func() { m.help.ShowAll = false }()
	return m.styles.Help.Render(m.help.View(m.keys))
}

// viewStatusLine renders the notice or error above the key hints.
func (m *Model) viewStatusLine() string {
	return NewStatusLine(m.contentWidth(), &m.styles).Render(m.GetStatusInfo())
}

// formatSeconds renders a duration in seconds as e.g. "3m0s".
func formatSeconds(seconds int) string {
	return (time.Duration(seconds) * time.Second).String()
}
