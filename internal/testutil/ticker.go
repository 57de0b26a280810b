package testutil

import (
	"sync/atomic"
	"time"

	"github.com/runoshun/timers/internal/engine"
)

// FakeTicker is a manually driven engine.Ticker.
type FakeTicker struct {
	ch       chan time.Time
	Interval time.Duration
	stopped  atomic.Bool
}

// C returns the tick channel.
func (f *FakeTicker) C() <-chan time.Time { return f.ch }

// Stop marks the ticker stopped.
func (f *FakeTicker) Stop() { f.stopped.Store(true) }

// Stopped reports whether Stop was called.
func (f *FakeTicker) Stopped() bool { return f.stopped.Load() }

// Tick delivers one tick. It blocks until the receiver takes it and reports
// false if nobody did within a second.
func (f *FakeTicker) Tick() bool {
	select {
	case f.ch <- time.Now():
		return true
	case <-time.After(time.Second):
		return false
	}
}

// FakeTickerFactory hands out FakeTickers and remembers them in creation order.
type FakeTickerFactory struct {
	created chan *FakeTicker
}

// NewFakeTickerFactory creates a factory.
func NewFakeTickerFactory() *FakeTickerFactory {
	return &FakeTickerFactory{created: make(chan *FakeTicker, 64)}
}

// New implements engine.TickerFactory.
func (f *FakeTickerFactory) New(d time.Duration) engine.Ticker {
	t := &FakeTicker{ch: make(chan time.Time), Interval: d}
	f.created <- t
	return t
}

// Next waits for the next created ticker. It returns nil after a second.
func (f *FakeTickerFactory) Next() *FakeTicker {
	select {
	case t := <-f.created:
		return t
	case <-time.After(time.Second):
		return nil
	}
}
