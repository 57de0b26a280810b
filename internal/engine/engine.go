// Package engine drives running timers: one cancellable ticking goroutine per
// timer that is running with time left.
package engine

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/runoshun/timers/internal/domain"
	"github.com/runoshun/timers/internal/store"
)

// Store is the part of the state container the engine needs.
type Store interface {
	DispatchFunc(fn func(domain.State) (domain.Action, bool)) (domain.State, bool)
	Watch(l store.Listener)
}

// Config contains runtime options for Engine.
type Config struct {
	NewTicker    TickerFactory
	TickInterval time.Duration
}

// Engine keeps exactly one countdown instance per timer that needs ticking.
// Instances are started and cancelled from the store's change listener, so
// cancellation happens in the same critical section as the state transition
// that caused it.
// Fields are ordered to minimize memory padding.
type Engine struct {
	store     Store
	notifier  domain.Notifier
	logger    domain.Logger
	clock     domain.Clock
	instances map[string]*instance
	options   Config
	wg        sync.WaitGroup
	mu        sync.Mutex
	started   bool
	stopped   bool
}

type instance struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates an Engine. A nil notifier discards notifications.
func New(s Store, notifier domain.Notifier, logger domain.Logger, clock domain.Clock, options Config) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = domain.DefaultTickInterval
	}
	if options.NewTicker == nil {
		options.NewTicker = NewRealTicker
	}
	if notifier == nil {
		notifier = domain.NotifierFunc(func(domain.Notification) {})
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}
	if clock == nil {
		clock = domain.RealClock{}
	}
	return &Engine{
		store:     s,
		notifier:  notifier,
		logger:    logger,
		clock:     clock,
		options:   options,
		instances: make(map[string]*instance),
	}
}

// Start attaches the engine to the store and starts instances for timers
// that are already running. Calling Start more than once has no effect.
func (e *Engine) Start() {
	e.mu.Lock()
	if e.started {
		e.mu.Unlock()
		return
	}
	e.started = true
	e.mu.Unlock()

	e.store.Watch(func(c store.Change) {
		e.reconcile(c.Next)
	})
}

// Stop cancels every instance and waits for their goroutines to exit.
// No tick is applied after Stop returns.
func (e *Engine) Stop() {
	e.mu.Lock()
	if e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	for id, inst := range e.instances {
		inst.cancel()
		delete(e.instances, id)
	}
	e.mu.Unlock()

	e.wg.Wait()
}

// Active returns the IDs of timers with a live instance, sorted.
func (e *Engine) Active() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	ids := make([]string, 0, len(e.instances))
	for id := range e.instances {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// reconcile makes the instance set match state. It runs under the store lock.
func (e *Engine) reconcile(state domain.State) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return
	}

	for id, inst := range e.instances {
		t, ok := state.Timer(id)
		if ok && t.NeedsTicking() {
			continue
		}
		inst.cancel()
		delete(e.instances, id)
		e.logger.Debug(id, "engine", "countdown stopped")
	}

	for _, t := range state.Running() {
		if _, ok := e.instances[t.ID]; ok {
			continue
		}
		ctx, cancel := context.WithCancel(context.Background())
		inst := &instance{ctx: ctx, cancel: cancel}
		e.instances[t.ID] = inst
		e.wg.Add(1)
		go e.run(inst, t.ID)
		e.logger.Debug(t.ID, "engine", fmt.Sprintf("countdown started at %ds", t.RemainingTime))
	}
}

func (e *Engine) run(inst *instance, id string) {
	defer e.wg.Done()

	ticker := e.options.NewTicker(e.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-inst.ctx.Done():
			return
		case <-ticker.C():
			if finished := e.tick(inst, id); finished {
				return
			}
		}
	}
}

// tick advances the timer by one second. It reports whether the instance
// should exit. Ticks from a cancelled instance, or for a timer that is no
// longer running, are dropped inside the store's critical section.
func (e *Engine) tick(inst *instance, id string) bool {
	var notes []domain.Notification
	finished := false
	now := e.clock.Now()

	e.store.DispatchFunc(func(state domain.State) (domain.Action, bool) {
		if inst.ctx.Err() != nil {
			finished = true
			return domain.Action{}, false
		}
		t, ok := state.Timer(id)
		if !ok || !t.NeedsTicking() {
			finished = true
			return domain.Action{}, false
		}

		next := t.RemainingTime - 1
		if next <= 0 {
			// Completion takes precedence over the halfway alert.
			finished = true
			notes = append(notes, domain.CompletedNotification(t, now))
			return domain.CompleteTimer(id), true
		}
		if t.HalfwayAlert && next == t.HalfwayPoint() {
			notes = append(notes, domain.HalfwayNotification(t, now))
		}
		return domain.UpdateTimerTime(id, next), true
	})

	for _, n := range notes {
		e.notifier.Notify(n)
	}
	return finished
}
