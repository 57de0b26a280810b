package usecase

import (
	"context"
	"slices"
	"strings"

	"github.com/runoshun/timers/internal/domain"
)

// ListTimersInput contains the parameters for listing timers.
type ListTimersInput struct {
	Categories []string // Show only these categories (empty = all)
}

// TimerGroup is one category section of the timer list.
// Fields are ordered to minimize memory padding.
type TimerGroup struct {
	Plan     domain.BulkPlan // Bulk eligibility for the category
	Category string
	Timers   []domain.Timer // Incomplete first, then by name
}

// ListTimersOutput contains the result of listing timers.
type ListTimersOutput struct {
	Categories []string     // Every category, in first-appearance order
	Groups     []TimerGroup // Filtered groups, in first-appearance order
}

// ListTimers groups timers by category for display.
type ListTimers struct {
	store domain.TimerStore
}

// NewListTimers creates a new ListTimers use case.
func NewListTimers(store domain.TimerStore) *ListTimers {
	return &ListTimers{store: store}
}

// Execute lists timers grouped by category.
func (uc *ListTimers) Execute(_ context.Context, in ListTimersInput) (*ListTimersOutput, error) {
	return &ListTimersOutput{
		Categories: uc.store.Snapshot().Categories(),
		Groups:     GroupTimers(uc.store.Snapshot(), in.Categories),
	}, nil
}

// GroupTimers builds the category sections of state, keeping only the
// categories in filter when it is non-empty. Filter matching ignores
// surrounding whitespace.
func GroupTimers(state domain.State, filter []string) []TimerGroup {
	wanted := make([]string, 0, len(filter))
	for _, c := range filter {
		if c = strings.TrimSpace(c); c != "" {
			wanted = append(wanted, c)
		}
	}

	var groups []TimerGroup
	for _, category := range state.Categories() {
		if len(wanted) > 0 && !slices.Contains(wanted, category) {
			continue
		}
		timers := state.TimersInCategory(category)
		groups = append(groups, TimerGroup{
			Category: category,
			Timers:   domain.SortedForDisplay(timers),
			Plan:     domain.ResolveBulk(timers, category),
		})
	}
	return groups
}
