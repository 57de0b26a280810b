package usecase_test

import (
	"testing"
	"time"

	"github.com/runoshun/timers/internal/domain"
	"github.com/runoshun/timers/internal/store"
	"github.com/runoshun/timers/internal/testutil"
)

var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T, timers ...domain.Timer) (*store.Store, *testutil.MockClock) {
	t.Helper()
	clock := &testutil.MockClock{NowTime: testNow}
	return store.New(domain.State{Timers: timers}, clock), clock
}

func timer(id, name, category string, duration int) domain.Timer {
	return domain.NewTimer(id, name, category, duration, false, testNow)
}
