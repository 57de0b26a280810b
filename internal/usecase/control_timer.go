package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/timers/internal/domain"
	"github.com/runoshun/timers/internal/usecase/shared"
)

// ControlOp is a single-timer control operation.
type ControlOp string

// Control operations.
const (
	ControlStart  ControlOp = "start"
	ControlPause  ControlOp = "pause"
	ControlReset  ControlOp = "reset"
	ControlToggle ControlOp = "toggle" // Start when not running, pause when running
)

// ControlTimerInput contains the parameters for controlling a timer.
type ControlTimerInput struct {
	TimerID string
	Op      ControlOp
}

// ControlTimerOutput contains the result of controlling a timer.
type ControlTimerOutput struct {
	Timer   domain.Timer // Timer after the operation
	Changed bool         // False when the operation was a no-op (e.g. starting a completed timer)
}

// ControlTimer starts, pauses or resets one timer.
type ControlTimer struct {
	store  domain.TimerStore
	logger domain.Logger
}

// NewControlTimer creates a new ControlTimer use case.
func NewControlTimer(store domain.TimerStore, logger domain.Logger) *ControlTimer {
	return &ControlTimer{
		store:  store,
		logger: logger,
	}
}

// Execute dispatches the action for in.Op.
func (uc *ControlTimer) Execute(_ context.Context, in ControlTimerInput) (*ControlTimerOutput, error) {
	before, err := shared.GetTimer(uc.store, in.TimerID)
	if err != nil {
		return nil, err
	}

	var action domain.Action
	switch in.Op {
	case ControlStart:
		action = domain.StartTimer(in.TimerID)
	case ControlPause:
		action = domain.PauseTimer(in.TimerID)
	case ControlReset:
		action = domain.ResetTimer(in.TimerID)
	case ControlToggle:
		if before.IsRunning {
			action = domain.PauseTimer(in.TimerID)
		} else {
			action = domain.StartTimer(in.TimerID)
		}
	default:
		return nil, fmt.Errorf("unknown timer operation %q", in.Op)
	}

	next := uc.store.Dispatch(action)
	after, ok := next.Timer(in.TimerID)
	if !ok {
		return nil, domain.ErrTimerNotFound
	}
	changed := after != before

	if changed && uc.logger != nil {
		uc.logger.Info(in.TimerID, "timer", fmt.Sprintf("%s: now %s", in.Op, after.Phase()))
	}

	return &ControlTimerOutput{Timer: after, Changed: changed}, nil
}
