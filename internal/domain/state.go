package domain

import (
	"slices"
	"strings"
)

// State is the whole collection of timers and history owned by the store.
// Both slices keep insertion order and are treated as immutable snapshots:
// reductions copy before writing.
type State struct {
	Timers  []Timer         `json:"timers"`
	History []HistoryRecord `json:"history"`
}

// Timer returns the timer with the given ID.
func (s State) Timer(id string) (Timer, bool) {
	for _, t := range s.Timers {
		if t.ID == id {
			return t, true
		}
	}
	return Timer{}, false
}

// HasTimer reports whether a timer with the given ID exists.
func (s State) HasTimer(id string) bool {
	_, ok := s.Timer(id)
	return ok
}

// Categories returns the distinct categories in order of first appearance.
func (s State) Categories() []string {
	var categories []string
	seen := make(map[string]bool)
	for _, t := range s.Timers {
		if seen[t.Category] {
			continue
		}
		seen[t.Category] = true
		categories = append(categories, t.Category)
	}
	return categories
}

// TimersInCategory returns the timers of a category in insertion order.
func (s State) TimersInCategory(category string) []Timer {
	var timers []Timer
	for _, t := range s.Timers {
		if t.Category == category {
			timers = append(timers, t)
		}
	}
	return timers
}

// Running returns the timers that need a countdown instance.
func (s State) Running() []Timer {
	var timers []Timer
	for _, t := range s.Timers {
		if t.NeedsTicking() {
			timers = append(timers, t)
		}
	}
	return timers
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	return State{
		Timers:  slices.Clone(s.Timers),
		History: slices.Clone(s.History),
	}
}

// Equal reports whether two states hold the same timers and history.
func (s State) Equal(other State) bool {
	return slices.EqualFunc(s.Timers, other.Timers, func(a, b Timer) bool {
		return a.ID == b.ID && a.Name == b.Name && a.Category == b.Category &&
			a.Duration == b.Duration && a.RemainingTime == b.RemainingTime &&
			a.HalfwayAlert == b.HalfwayAlert && a.IsRunning == b.IsRunning &&
			a.IsCompleted == b.IsCompleted && a.CreatedAt.Equal(b.CreatedAt)
	}) && slices.EqualFunc(s.History, other.History, func(a, b HistoryRecord) bool {
		return a.ID == b.ID && a.Name == b.Name && a.Category == b.Category &&
			a.Duration == b.Duration && a.CompletedAt.Equal(b.CompletedAt)
	})
}

// SortedForDisplay returns a category's timers with incomplete timers first,
// each part ordered by name.
func SortedForDisplay(timers []Timer) []Timer {
	sorted := slices.Clone(timers)
	slices.SortStableFunc(sorted, func(a, b Timer) int {
		if a.IsCompleted != b.IsCompleted {
			if a.IsCompleted {
				return 1
			}
			return -1
		}
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return sorted
}
