package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/runoshun/timers/internal/domain"
)

func TestView_Empty(t *testing.T) {
	env := newTestEnv(t)

	view := env.model.View()

	assert.Contains(t, view, "Timers")
	assert.Contains(t, view, "Try creating your first timer (press n)")
	assert.Contains(t, view, "☀ light")
}

func TestView_Groups(t *testing.T) {
	running := timer("2", "Focus", "Work", 1500)
	running.IsRunning = true
	running.RemainingTime = 1200
	brew := timer("1", "Tea", "Kitchen", 180)
	brew.HalfwayAlert = true
	env := newTestEnv(t, brew, running)

	view := env.model.View()

	assert.Contains(t, view, "▾ Kitchen")
	assert.Contains(t, view, "1/1 incomplete")
	assert.Contains(t, view, "B start · P pause · R reset")
	assert.Contains(t, view, "Tea")
	assert.Contains(t, view, "180s")
	assert.Contains(t, view, "Idle")
	assert.Contains(t, view, "½")
	assert.Contains(t, view, "1200s")
	assert.Contains(t, view, "Running")
}

func TestView_CompletedGroupHidesBulkHints(t *testing.T) {
	done := timer("1", "Tea", "Kitchen", 180)
	done.IsCompleted = true
	done.RemainingTime = 0
	env := newTestEnv(t, done)

	view := env.model.View()

	assert.Contains(t, view, "0/1 incomplete")
	assert.Contains(t, view, "Completed")
	assert.NotContains(t, view, "B start")
}

func TestView_CollapsedGroup(t *testing.T) {
	env := newTestEnv(t, timer("1", "Tea", "Kitchen", 180))
	env.press(t, "space")

	view := env.model.View()

	assert.Contains(t, view, "▸ Kitchen")
	assert.NotContains(t, view, "180s")
}

func TestView_History(t *testing.T) {
	env := newTestEnv(t)
	env.press(t, "tab")

	view := env.model.View()

	assert.Contains(t, view, "History")
	assert.Contains(t, view, "No completed timers yet")
}

func TestView_HistoryRecords(t *testing.T) {
	record := domain.NewHistoryRecord(timer("1", "Tea", "Kitchen", 180), testNow)
	env := newTestEnv(t)
	env.model.Update(MsgStateChanged{State: domain.State{History: []domain.HistoryRecord{record}}})
	env.press(t, "tab")

	view := env.model.View()

	assert.Contains(t, view, "Tea")
	assert.Contains(t, view, "3m0s")
}

func TestView_AddForm(t *testing.T) {
	env := newTestEnv(t)
	env.press(t, "n")
	env.model.Update(MsgFormInvalid{Err: domain.ErrEmptyName})

	view := env.model.View()

	assert.Contains(t, view, "New Timer")
	assert.Contains(t, view, "Seconds")
	assert.Contains(t, view, "[ ] off")
	assert.Contains(t, view, domain.ErrEmptyName.Error())
}

func TestView_Help(t *testing.T) {
	env := newTestEnv(t)
	env.press(t, "?")

	view := env.model.View()

	assert.Contains(t, view, "start category")
	assert.Contains(t, view, "export")
}

func TestView_StatusLine(t *testing.T) {
	env := newTestEnv(t)

	assert.Contains(t, env.model.View(), "start/pause")

	env.model.Update(MsgError{Err: errors.New("boom")})
	assert.Contains(t, env.model.View(), "Error: boom")
}

func TestView_DarkTheme(t *testing.T) {
	env := newTestEnv(t)
	env.model.Update(MsgThemeChanged{Theme: domain.DarkTheme})

	assert.Contains(t, env.model.View(), "☾ dark")
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "3m0s", formatSeconds(180))
	assert.Equal(t, "1h0m5s", formatSeconds(3605))
	assert.Equal(t, "0s", formatSeconds(0))
}
