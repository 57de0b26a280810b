// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/timers/internal/domain"
	"github.com/runoshun/timers/internal/usecase/shared"
)

// AddTimerInput contains the parameters for creating a timer.
// Fields are ordered to minimize memory padding.
type AddTimerInput struct {
	Name         string // Display name (required, trimmed)
	Category     string // Grouping key (required, trimmed)
	Duration     string // Seconds as entered by the user (required, integer > 0)
	HalfwayAlert bool   // Notify when half of the duration is left
}

// AddTimerOutput contains the result of creating a timer.
type AddTimerOutput struct {
	Timer domain.Timer // The created timer
}

// AddTimer is the use case for creating a new idle timer.
type AddTimer struct {
	store  domain.TimerStore
	clock  domain.Clock
	logger domain.Logger
}

// NewAddTimer creates a new AddTimer use case.
func NewAddTimer(store domain.TimerStore, clock domain.Clock, logger domain.Logger) *AddTimer {
	return &AddTimer{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// Execute validates the input and dispatches ADD_TIMER.
// Nothing is dispatched when validation fails.
func (uc *AddTimer) Execute(_ context.Context, in AddTimerInput) (*AddTimerOutput, error) {
	fields, duration, err := shared.ValidateTimerFields(shared.TimerFields{
		Name:     in.Name,
		Category: in.Category,
		Duration: in.Duration,
	})
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	state := uc.store.Snapshot()
	id := domain.TimerID(now)
	for state.HasTimer(id) {
		id = domain.NextTimerID(id)
	}

	timer := domain.NewTimer(id, fields.Name, fields.Category, duration, in.HalfwayAlert, now)
	uc.store.Dispatch(domain.AddTimer(timer))

	if uc.logger != nil {
		uc.logger.Info(id, "timer", fmt.Sprintf("added: %q in %q (%ds)", timer.Name, timer.Category, duration))
	}

	return &AddTimerOutput{Timer: timer}, nil
}
