package usecase

import (
	"context"
	"time"

	"github.com/runoshun/timers/internal/domain"
)

// ShowHistoryInput contains the parameters for showing history.
type ShowHistoryInput struct {
	Location *time.Location // Day boundaries (nil = local time)
}

// ShowHistoryOutput contains completed timers grouped by day.
type ShowHistoryOutput struct {
	Groups []domain.HistoryGroup // Newest day first
	Total  int                   // Number of records
}

// ShowHistory groups the completion history by calendar day.
type ShowHistory struct {
	store domain.TimerStore
}

// NewShowHistory creates a new ShowHistory use case.
func NewShowHistory(store domain.TimerStore) *ShowHistory {
	return &ShowHistory{store: store}
}

// Execute returns the grouped history.
func (uc *ShowHistory) Execute(_ context.Context, in ShowHistoryInput) (*ShowHistoryOutput, error) {
	history := uc.store.Snapshot().History
	return &ShowHistoryOutput{
		Groups: domain.GroupHistoryByDay(history, in.Location),
		Total:  len(history),
	}, nil
}
