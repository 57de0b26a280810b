package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimer_Phase(t *testing.T) {
	idle := newTestTimer("1", "Work", 10)
	assert.Equal(t, PhaseIdle, idle.Phase())

	running := idle
	running.IsRunning = true
	assert.Equal(t, PhaseRunning, running.Phase())

	paused := idle
	paused.RemainingTime = 6
	assert.Equal(t, PhasePaused, paused.Phase())

	completed := idle
	completed.RemainingTime = 0
	completed.IsCompleted = true
	assert.Equal(t, PhaseCompleted, completed.Phase())
}

func TestTimer_Progress(t *testing.T) {
	timer := newTestTimer("1", "Work", 10)
	assert.InDelta(t, 0, timer.Progress(), 0.001)

	timer.RemainingTime = 4
	assert.InDelta(t, 60, timer.Progress(), 0.001)

	timer.RemainingTime = 0
	timer.IsCompleted = true
	assert.InDelta(t, 100, timer.Progress(), 0.001)
}

func TestTimer_HalfwayPoint(t *testing.T) {
	tests := []struct {
		duration int
		want     int
	}{
		{10, 5},
		{9, 4},
		{1, 0},
		{2, 1},
	}
	for _, tt := range tests {
		timer := newTestTimer("1", "Work", tt.duration)
		assert.Equal(t, tt.want, timer.HalfwayPoint(), "duration %d", tt.duration)
	}
}

func TestTimer_StatusText(t *testing.T) {
	timer := newTestTimer("1", "Work", 42)
	assert.Equal(t, "42s", timer.StatusText())

	timer.IsCompleted = true
	timer.RemainingTime = 0
	assert.Equal(t, "Completed", timer.StatusText())
}

func TestTimer_NeedsTicking(t *testing.T) {
	timer := newTestTimer("1", "Work", 3)
	assert.False(t, timer.NeedsTicking())

	timer.IsRunning = true
	assert.True(t, timer.NeedsTicking())

	timer.RemainingTime = 0
	assert.False(t, timer.NeedsTicking())
}

func TestState_Categories(t *testing.T) {
	state := stateWith(
		newTestTimer("1", "Work", 1),
		newTestTimer("2", "Home", 1),
		newTestTimer("3", "Work", 1),
		newTestTimer("4", "Gym", 1),
	)

	assert.Equal(t, []string{"Work", "Home", "Gym"}, state.Categories())
	assert.Equal(t, []string{"1", "3"}, ids(state.TimersInCategory("Work")))
}

func TestSortedForDisplay(t *testing.T) {
	b := NewTimer("1", "banana", "Work", 5, false, testNow)
	a := NewTimer("2", "Apple", "Work", 5, false, testNow)
	done := NewTimer("3", "aardvark", "Work", 5, false, testNow)
	done.IsCompleted = true
	done.RemainingTime = 0

	sorted := SortedForDisplay([]Timer{done, b, a})

	assert.Equal(t, []string{"2", "1", "3"}, ids(sorted))
}
