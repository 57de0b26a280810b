package domain

// ActionType identifies a store action.
type ActionType string

// Action kinds understood by Reduce.
const (
	ActionAddTimer        ActionType = "ADD_TIMER"
	ActionStartTimer      ActionType = "START_TIMER"
	ActionPauseTimer      ActionType = "PAUSE_TIMER"
	ActionResetTimer      ActionType = "RESET_TIMER"
	ActionUpdateTimerTime ActionType = "UPDATE_TIMER_TIME"
	ActionCompleteTimer   ActionType = "COMPLETE_TIMER"
	ActionBulkStart       ActionType = "BULK_START"
	ActionBulkPause       ActionType = "BULK_PAUSE"
	ActionBulkReset       ActionType = "BULK_RESET"
)

// Action is a request to change the store state.
// Only the payload fields relevant to Type are read.
// Fields are ordered to minimize memory padding.
type Action struct {
	Timer         Timer      // ADD_TIMER payload
	Type          ActionType // Action kind
	ID            string     // Target timer for single-timer actions
	Category      string     // Target category for bulk actions
	RemainingTime int        // UPDATE_TIMER_TIME payload
}

// AddTimer returns an ADD_TIMER action.
func AddTimer(t Timer) Action {
	return Action{Type: ActionAddTimer, Timer: t}
}

// StartTimer returns a START_TIMER action.
func StartTimer(id string) Action {
	return Action{Type: ActionStartTimer, ID: id}
}

// PauseTimer returns a PAUSE_TIMER action.
func PauseTimer(id string) Action {
	return Action{Type: ActionPauseTimer, ID: id}
}

// ResetTimer returns a RESET_TIMER action.
func ResetTimer(id string) Action {
	return Action{Type: ActionResetTimer, ID: id}
}

// UpdateTimerTime returns an UPDATE_TIMER_TIME action.
func UpdateTimerTime(id string, remaining int) Action {
	return Action{Type: ActionUpdateTimerTime, ID: id, RemainingTime: remaining}
}

// CompleteTimer returns a COMPLETE_TIMER action.
func CompleteTimer(id string) Action {
	return Action{Type: ActionCompleteTimer, ID: id}
}

// BulkStart returns a BULK_START action.
func BulkStart(category string) Action {
	return Action{Type: ActionBulkStart, Category: category}
}

// BulkPause returns a BULK_PAUSE action.
func BulkPause(category string) Action {
	return Action{Type: ActionBulkPause, Category: category}
}

// BulkReset returns a BULK_RESET action.
func BulkReset(category string) Action {
	return Action{Type: ActionBulkReset, Category: category}
}
