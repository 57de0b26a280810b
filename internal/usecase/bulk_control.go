package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/timers/internal/domain"
)

// BulkControlInput contains the parameters for a category-wide operation.
type BulkControlInput struct {
	Category string // Target category (exact match)
	Op       string // start, pause or reset
}

// BulkControlOutput contains the result of a bulk operation.
type BulkControlOutput struct {
	Affected []string        // IDs of timers the operation changed
	Plan     domain.BulkPlan // Eligibility before the operation
}

// BulkControl applies one operation to every eligible timer of a category
// in a single reduction.
type BulkControl struct {
	store  domain.TimerStore
	logger domain.Logger
}

// NewBulkControl creates a new BulkControl use case.
func NewBulkControl(store domain.TimerStore, logger domain.Logger) *BulkControl {
	return &BulkControl{
		store:  store,
		logger: logger,
	}
}

// Execute dispatches the bulk action. A category without eligible timers
// is not an error; Affected is empty.
func (uc *BulkControl) Execute(_ context.Context, in BulkControlInput) (*BulkControlOutput, error) {
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return nil, domain.ErrEmptyCategory
	}
	action, err := domain.BulkAction(strings.ToLower(in.Op), category)
	if err != nil {
		return nil, err
	}

	var prev domain.State
	next, _ := uc.store.DispatchFunc(func(s domain.State) (domain.Action, bool) {
		prev = s
		return action, true
	})

	plan := domain.ResolveBulk(prev.Timers, category)
	affected := domain.ChangedTimers(prev.Timers, next.Timers)
	if uc.logger != nil {
		uc.logger.Info("", "bulk", fmt.Sprintf("%s %q: %d timer(s)", action.Type, category, len(affected)))
	}

	return &BulkControlOutput{Affected: affected, Plan: plan}, nil
}
