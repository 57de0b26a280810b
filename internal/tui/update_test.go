package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/timers/internal/domain"
)

func kitchenAndWork() []domain.Timer {
	return []domain.Timer{
		timer("1", "Tea", "Kitchen", 180),
		timer("2", "Focus", "Work", 1500),
		timer("3", "Eggs", "Kitchen", 420),
	}
}

func TestNew_BuildsRows(t *testing.T) {
	env := newTestEnv(t, kitchenAndWork()...)

	assert.Equal(t, []row{
		{category: "Kitchen"},
		{category: "Kitchen", timerID: "3"},
		{category: "Kitchen", timerID: "1"},
		{category: "Work"},
		{category: "Work", timerID: "2"},
	}, env.model.rows)
	assert.Equal(t, ModeNormal, env.model.mode)
	assert.Equal(t, RouteMain, env.model.route)
}

func TestUpdate_Navigation(t *testing.T) {
	env := newTestEnv(t, kitchenAndWork()...)

	env.press(t, "up")
	assert.Equal(t, 0, env.model.cursor)

	env.press(t, "j")
	env.press(t, "down")
	assert.Equal(t, 2, env.model.cursor)
	selected, ok := env.model.SelectedTimer()
	require.True(t, ok)
	assert.Equal(t, "Tea", selected.Name)

	for range 10 {
		env.press(t, "j")
	}
	assert.Equal(t, 4, env.model.cursor)
	assert.Equal(t, "Work", env.model.SelectedCategory())
}

func TestUpdate_ToggleStartsAndPausesTimer(t *testing.T) {
	env := newTestEnv(t, kitchenAndWork()...)
	env.press(t, "j") // Eggs

	assert.Nil(t, env.run(t, env.press(t, "space")))
	assert.True(t, env.timer(t, "3").IsRunning)

	env.sync()
	assert.True(t, env.model.state.Timers[2].IsRunning)

	env.run(t, env.press(t, "space"))
	assert.False(t, env.timer(t, "3").IsRunning)
}

func TestUpdate_ToggleOnHeaderFoldsGroup(t *testing.T) {
	env := newTestEnv(t, kitchenAndWork()...)

	assert.Nil(t, env.press(t, "space"))
	assert.Len(t, env.model.rows, 3)
	assert.True(t, env.model.collapsed["Kitchen"])

	env.press(t, "enter")
	assert.Len(t, env.model.rows, 5)
}

func TestUpdate_ToggleCompletedTimerShowsHint(t *testing.T) {
	completed := timer("1", "Tea", "Kitchen", 180)
	completed.IsCompleted = true
	completed.RemainingTime = 0
	env := newTestEnv(t, completed)
	env.press(t, "j")

	msg := env.run(t, env.press(t, "space"))

	assert.IsType(t, MsgInfo{}, msg)
	assert.Contains(t, env.model.visibleNotice(), "press r to reset")
	assert.False(t, env.timer(t, "1").IsRunning)
}

func TestUpdate_ResetSelectedTimer(t *testing.T) {
	paused := timer("1", "Tea", "Kitchen", 180)
	paused.RemainingTime = 100
	env := newTestEnv(t, paused)
	env.press(t, "j")

	env.run(t, env.press(t, "r"))

	assert.Equal(t, 180, env.timer(t, "1").RemainingTime)
}

func TestUpdate_ResetOnHeaderDoesNothing(t *testing.T) {
	env := newTestEnv(t, kitchenAndWork()...)

	assert.Nil(t, env.press(t, "r"))
}

func TestUpdate_BulkControls(t *testing.T) {
	env := newTestEnv(t, kitchenAndWork()...)

	env.run(t, env.press(t, "B"))
	assert.True(t, env.timer(t, "1").IsRunning)
	assert.True(t, env.timer(t, "3").IsRunning)
	assert.False(t, env.timer(t, "2").IsRunning)

	msg := env.run(t, env.press(t, "B"))
	assert.Equal(t, MsgInfo{Text: "No timers in Kitchen to start"}, msg)

	env.run(t, env.press(t, "P"))
	assert.False(t, env.timer(t, "1").IsRunning)
	assert.False(t, env.timer(t, "3").IsRunning)
}

func TestUpdate_AddTimerForm(t *testing.T) {
	env := newTestEnv(t)

	env.press(t, "n")
	require.Equal(t, ModeAdd, env.model.mode)

	env.press(t, "Tea")
	env.press(t, "tab")
	env.press(t, "180")
	env.press(t, "tab")
	env.press(t, "Kitchen")
	env.press(t, "tab")
	env.press(t, "space")
	assert.True(t, env.model.form.halfway)

	msg := env.run(t, env.press(t, "enter"))

	added, ok := msg.(MsgTimerAdded)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, "Tea", added.Timer.Name)
	assert.Equal(t, ModeNormal, env.model.mode)
	assert.Empty(t, env.model.form.name.Value())

	state := env.c.Store.Snapshot()
	require.Len(t, state.Timers, 1)
	assert.Equal(t, "Kitchen", state.Timers[0].Category)
	assert.Equal(t, 180, state.Timers[0].Duration)
	assert.True(t, state.Timers[0].HalfwayAlert)
}

func TestUpdate_AddTimerFormPrefillsCategory(t *testing.T) {
	env := newTestEnv(t, kitchenAndWork()...)
	env.press(t, "j")

	env.press(t, "n")

	assert.Equal(t, "Kitchen", env.model.form.category.Value())
}

func TestUpdate_AddTimerFormInvalid(t *testing.T) {
	env := newTestEnv(t)
	env.press(t, "n")
	env.press(t, "Tea")
	env.press(t, "tab")
	env.press(t, "abc")

	msg := env.run(t, env.press(t, "enter"))

	assert.IsType(t, MsgFormInvalid{}, msg)
	assert.Equal(t, ModeAdd, env.model.mode, "form stays open")
	assert.ErrorIs(t, env.model.form.err, domain.ErrEmptyCategory)
	assert.Equal(t, "Tea", env.model.form.name.Value())
	assert.Empty(t, env.c.Store.Snapshot().Timers)
}

func TestUpdate_AddTimerFormCancel(t *testing.T) {
	env := newTestEnv(t)
	env.press(t, "n")
	env.press(t, "Tea")

	env.press(t, "esc")

	assert.Equal(t, ModeNormal, env.model.mode)
	assert.Empty(t, env.model.form.name.Value())
}

func TestUpdate_QuitKeyIgnoredInForm(t *testing.T) {
	env := newTestEnv(t)
	env.press(t, "n")

	env.press(t, "q")

	assert.Equal(t, ModeAdd, env.model.mode)
	assert.Equal(t, "q", env.model.form.name.Value())
}

func TestUpdate_CategoryFilter(t *testing.T) {
	env := newTestEnv(t, kitchenAndWork()...)

	env.press(t, "f")
	require.Equal(t, ModeFilter, env.model.mode)
	env.press(t, "l")
	env.press(t, "space")
	env.press(t, "enter")

	assert.Equal(t, ModeNormal, env.model.mode)
	assert.Equal(t, []string{"Work"}, env.model.selected)
	assert.Equal(t, []row{{category: "Work"}, {category: "Work", timerID: "2"}}, env.model.rows)

	env.press(t, "esc")
	assert.Empty(t, env.model.selected)
	assert.Len(t, env.model.rows, 5)
}

func TestUpdate_FilterPrunedWhenCategoryDisappears(t *testing.T) {
	env := newTestEnv(t, kitchenAndWork()...)
	env.model.toggleCategory("Garden")

	env.sync()

	assert.Empty(t, env.model.selected)
}

func TestUpdate_HistoryRoute(t *testing.T) {
	env := newTestEnv(t, kitchenAndWork()...)

	env.press(t, "tab")
	assert.Equal(t, RouteHistory, env.model.route)

	env.press(t, "tab")
	assert.Equal(t, RouteMain, env.model.route)

	env.press(t, "tab")
	env.press(t, "esc")
	assert.Equal(t, RouteMain, env.model.route)
}

func TestUpdate_ThemeToggle(t *testing.T) {
	env := newTestEnv(t)
	require.Equal(t, domain.ThemeLight, env.model.styles.Theme.Mode)

	msg := env.run(t, env.press(t, "t"))

	assert.Equal(t, MsgThemeChanged{Theme: domain.DarkTheme}, msg)
	assert.Equal(t, domain.ThemeDark, env.model.styles.Theme.Mode)
	assert.Equal(t, "dark", env.prefs.Values[domain.ThemePreferenceKey])
}

func TestUpdate_ThemeToggleSaveFails(t *testing.T) {
	env := newTestEnv(t)
	env.prefs.SetErr = errors.New("disk full")

	env.run(t, env.press(t, "t"))

	assert.Error(t, env.model.err)
	assert.Equal(t, domain.ThemeLight, env.model.styles.Theme.Mode)
}

func TestUpdate_Export(t *testing.T) {
	env := newTestEnv(t)

	msg := env.run(t, env.press(t, "e"))

	assert.Equal(t, MsgExported{Location: "/exports/timer-history.json", Records: 0, Exported: true}, msg)
	assert.Equal(t, "Exported 0 record(s) to /exports/timer-history.json", env.model.visibleNotice())
	require.Len(t, env.exporter.Requests, 1)
	assert.Equal(t, "timer-history.json", env.exporter.Requests[0].Filename)
}

func TestUpdate_ExportFailure(t *testing.T) {
	env := newTestEnv(t)
	env.exporter.Err = errors.New("share sheet dismissed")

	env.run(t, env.press(t, "e"))

	assert.ErrorIs(t, env.model.err, errExportFailed)
}

func TestUpdate_NotificationShowsNotice(t *testing.T) {
	env := newTestEnv(t)
	n := domain.CompletedNotification(timer("1", "Tea", "Kitchen", 180), testNow)

	_, cmd := env.model.Update(MsgNotification{Notification: n})

	assert.NotNil(t, cmd, "keeps listening")
	assert.Equal(t, "Timer Complete!: Tea has finished!", env.model.visibleNotice())
}

func TestUpdate_ErrorClearedByKey(t *testing.T) {
	env := newTestEnv(t)
	env.model.Update(MsgError{Err: errors.New("boom")})
	require.Error(t, env.model.err)

	env.press(t, "j")

	assert.NoError(t, env.model.err)
}

func TestUpdate_HelpMode(t *testing.T) {
	env := newTestEnv(t)

	env.press(t, "?")
	assert.Equal(t, ModeHelp, env.model.mode)

	env.press(t, "esc")
	assert.Equal(t, ModeNormal, env.model.mode)
}

func TestUpdate_Quit(t *testing.T) {
	env := newTestEnv(t)

	cmd := env.press(t, "q")

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_WindowSize(t *testing.T) {
	env := newTestEnv(t)

	env.model.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, 100, env.model.width)
	assert.Equal(t, 96, env.model.history.Width)
	assert.Equal(t, 34, env.model.history.Height)
	assert.Equal(t, 25, env.model.bar.Width)
}

func TestUpdate_CursorFollowsRowAcrossStateChanges(t *testing.T) {
	env := newTestEnv(t, kitchenAndWork()...)
	env.press(t, "j")
	env.press(t, "j") // Tea

	env.c.Store.Dispatch(domain.AddTimer(timer("4", "Bread", "Kitchen", 600)))
	env.sync()

	selected, ok := env.model.SelectedTimer()
	require.True(t, ok)
	assert.Equal(t, "Tea", selected.Name)
}
