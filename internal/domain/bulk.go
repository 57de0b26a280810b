package domain

// BulkPlan describes which timers of a category each bulk control would affect.
// Fields are ordered to minimize memory padding.
type BulkPlan struct {
	Category   string
	Start      []string // IDs eligible for start: not running and not completed
	Pause      []string // IDs eligible for pause: running
	Reset      []string // IDs eligible for reset: completed or partially elapsed
	Total      int      // Timers in the category
	Incomplete int      // Timers in the category that are not completed
}

// ResolveBulk computes the bulk plan for a category.
func ResolveBulk(timers []Timer, category string) BulkPlan {
	plan := BulkPlan{Category: category}
	for _, t := range timers {
		if t.Category != category {
			continue
		}
		plan.Total++
		if !t.IsCompleted {
			plan.Incomplete++
		}
		if !t.IsRunning && !t.IsCompleted {
			plan.Start = append(plan.Start, t.ID)
		}
		if t.IsRunning {
			plan.Pause = append(plan.Pause, t.ID)
		}
		if t.IsCompleted || t.RemainingTime != t.Duration {
			plan.Reset = append(plan.Reset, t.ID)
		}
	}
	return plan
}

// ShowControls returns true if the category has timers the bulk controls can act on.
func (p BulkPlan) ShowControls() bool {
	return p.Incomplete > 0
}

// ChangedTimers returns the IDs, in next order, of timers that differ from
// their counterpart in prev or are new.
func ChangedTimers(prev, next []Timer) []string {
	before := make(map[string]Timer, len(prev))
	for _, t := range prev {
		before[t.ID] = t
	}
	var changed []string
	for _, t := range next {
		if old, ok := before[t.ID]; !ok || old != t {
			changed = append(changed, t.ID)
		}
	}
	return changed
}

// BulkAction returns the bulk action for an operation name (start, pause, reset).
func BulkAction(op, category string) (Action, error) {
	switch op {
	case "start":
		return BulkStart(category), nil
	case "pause":
		return BulkPause(category), nil
	case "reset":
		return BulkReset(category), nil
	default:
		return Action{}, ErrInvalidBulkOperation
	}
}
