package domain

import "time"

// Reduce returns the state that results from applying action to state.
// It never mutates its input. Actions that reference an unknown timer or
// would not change anything return the input state unchanged.
func Reduce(state State, action Action, now time.Time) State {
	next, _ := Apply(state, action, now)
	return next
}

// Apply is Reduce that also reports whether the action changed the state.
func Apply(state State, action Action, now time.Time) (State, bool) {
	switch action.Type {
	case ActionAddTimer:
		timers := make([]Timer, len(state.Timers), len(state.Timers)+1)
		copy(timers, state.Timers)
		timers = append(timers, action.Timer)
		return State{Timers: timers, History: state.History}, true

	case ActionStartTimer:
		return state.updateTimers(byID(action.ID), func(t *Timer) bool {
			if t.IsCompleted || t.IsRunning {
				return false
			}
			t.IsRunning = true
			return true
		})

	case ActionPauseTimer:
		return state.updateTimers(byID(action.ID), pause)

	case ActionResetTimer:
		return state.updateTimers(byID(action.ID), reset)

	case ActionUpdateTimerTime:
		return state.updateTimers(byID(action.ID), func(t *Timer) bool {
			// Zero is only reachable through completion.
			if t.IsCompleted || action.RemainingTime < 1 || action.RemainingTime > t.Duration {
				return false
			}
			if t.RemainingTime == action.RemainingTime {
				return false
			}
			t.RemainingTime = action.RemainingTime
			return true
		})

	case ActionCompleteTimer:
		return state.complete(action.ID, now)

	case ActionBulkStart:
		return state.updateTimers(byCategory(action.Category), func(t *Timer) bool {
			if t.IsCompleted || t.IsRunning {
				return false
			}
			t.IsRunning = true
			return true
		})

	case ActionBulkPause:
		return state.updateTimers(byCategory(action.Category), func(t *Timer) bool {
			if t.IsCompleted {
				return false
			}
			return pause(t)
		})

	case ActionBulkReset:
		return state.updateTimers(byCategory(action.Category), reset)
	}

	return state, false
}

func byID(id string) func(*Timer) bool {
	return func(t *Timer) bool { return t.ID == id }
}

func byCategory(category string) func(*Timer) bool {
	return func(t *Timer) bool { return t.Category == category }
}

func pause(t *Timer) bool {
	if !t.IsRunning {
		return false
	}
	t.IsRunning = false
	return true
}

func reset(t *Timer) bool {
	if !t.CanReset() {
		return false
	}
	t.RemainingTime = t.Duration
	t.IsRunning = false
	t.IsCompleted = false
	return true
}

// updateTimers applies fn to every matching timer on a copy of the timer slice.
// The copy is only made once a timer actually changes.
func (s State) updateTimers(match func(*Timer) bool, fn func(*Timer) bool) (State, bool) {
	var timers []Timer
	for i := range s.Timers {
		t := s.Timers[i]
		if !match(&t) || !fn(&t) {
			continue
		}
		if timers == nil {
			timers = make([]Timer, len(s.Timers))
			copy(timers, s.Timers)
		}
		timers[i] = t
	}
	if timers == nil {
		return s, false
	}
	return State{Timers: timers, History: s.History}, true
}

// complete marks a timer as completed and appends its history record.
// Completing an already completed timer is a no-op so a double-fired
// completion cannot produce a second record.
func (s State) complete(id string, now time.Time) (State, bool) {
	var completed Timer
	next, changed := s.updateTimers(byID(id), func(t *Timer) bool {
		if t.IsCompleted {
			return false
		}
		t.RemainingTime = 0
		t.IsRunning = false
		t.IsCompleted = true
		completed = *t
		return true
	})
	if !changed {
		return s, false
	}

	history := make([]HistoryRecord, len(s.History), len(s.History)+1)
	copy(history, s.History)
	next.History = append(history, NewHistoryRecord(completed, now))
	return next, true
}
