// Package store provides the owned state container that serializes all
// timer state changes through domain.Reduce.
package store

import (
	"fmt"
	"sync"

	"github.com/runoshun/timers/internal/domain"
)

// Ensure Store implements domain.TimerStore.
var _ domain.TimerStore = (*Store)(nil)

// Change describes one effective reduction.
// Fields are ordered to minimize memory padding.
type Change struct {
	Prev   domain.State
	Next   domain.State
	Action domain.Action
}

// Listener is called synchronously after every effective reduction, in
// dispatch order, while the store's writer lock is held. Listeners must not
// dispatch and must return quickly.
type Listener func(Change)

// Store owns the single timer state. All writes go through Dispatch or
// DispatchFunc; readers get immutable snapshots.
// Fields are ordered to minimize memory padding.
type Store struct {
	clock     domain.Clock
	repo      domain.StateRepository
	logger    domain.Logger
	state     domain.State
	listeners []Listener
	subs      []chan domain.State
	mu        sync.Mutex
	closed    bool
}

// Option configures a Store.
type Option func(*Store)

// WithRepository saves the state after every effective reduction.
// Save errors are logged and otherwise ignored.
func WithRepository(repo domain.StateRepository) Option {
	return func(s *Store) {
		s.repo = repo
	}
}

// WithLogger sets the logger used for dispatch and persistence messages.
func WithLogger(logger domain.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Store holding initial.
func New(initial domain.State, clock domain.Clock, opts ...Option) *Store {
	if clock == nil {
		clock = domain.RealClock{}
	}
	s := &Store{
		state:  initial.Clone(),
		clock:  clock,
		logger: domain.NopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the current state. Callers must treat it as read-only.
func (s *Store) Snapshot() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies action and returns the resulting state.
func (s *Store) Dispatch(action domain.Action) domain.State {
	next, _ := s.DispatchFunc(func(domain.State) (domain.Action, bool) {
		return action, true
	})
	return next
}

// DispatchFunc lets fn choose an action from the current state and applies it
// atomically. It reports whether the state changed. Returning false from fn
// dispatches nothing.
func (s *Store) DispatchFunc(fn func(domain.State) (domain.Action, bool)) (domain.State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	action, ok := fn(s.state)
	if !ok {
		return s.state, false
	}

	prev := s.state
	next, changed := domain.Apply(prev, action, s.clock.Now())
	if !changed {
		return prev, false
	}
	s.state = next
	s.logger.Debug(action.ID, "store", fmt.Sprintf("%s applied", action.Type))

	change := Change{Prev: prev, Next: next, Action: action}
	for _, l := range s.listeners {
		l(change)
	}
	s.persistLocked(next)
	s.publishLocked(next)
	return next, true
}

// OnChange registers a listener.
func (s *Store) OnChange(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Watch registers a listener and immediately calls it once with the current
// state (Prev and Next equal, zero Action) under the same lock, so the
// listener cannot miss or reorder a change.
func (s *Store) Watch(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
	l(Change{Prev: s.state, Next: s.state})
}

// Subscribe registers a channel that receives every new state.
// Delivery is non-blocking: a subscriber that falls behind misses states
// but always sees a later one.
func (s *Store) Subscribe(buffer int) <-chan domain.State {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan domain.State, buffer)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		close(ch)
		return ch
	}
	s.subs = append(s.subs, ch)
	return ch
}

// Close closes all subscriber channels. Dispatch keeps working.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for _, ch := range s.subs {
		close(ch)
	}
	s.subs = nil
}

func (s *Store) persistLocked(state domain.State) {
	if s.repo == nil {
		return
	}
	if err := s.repo.Save(state); err != nil {
		s.logger.Warn("", "store", fmt.Sprintf("save state: %v", err))
	}
}

func (s *Store) publishLocked(state domain.State) {
	for _, ch := range s.subs {
		select {
		case ch <- state:
		default:
			// Drop the oldest pending state so the newest one is delivered.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- state:
			default:
			}
		}
	}
}
