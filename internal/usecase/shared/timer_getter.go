package shared

import "github.com/runoshun/timers/internal/domain"

// GetTimer looks a timer up in the current snapshot and returns
// domain.ErrTimerNotFound if it does not exist.
func GetTimer(store domain.TimerStore, id string) (domain.Timer, error) {
	t, ok := store.Snapshot().Timer(id)
	if !ok {
		return domain.Timer{}, domain.ErrTimerNotFound
	}
	return t, nil
}
