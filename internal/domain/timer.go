// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"
	"time"
)

// Timer represents a single named countdown.
// Fields are ordered to minimize memory padding.
type Timer struct {
	CreatedAt     time.Time `json:"createdAt" yaml:"createdAt"`         // Creation time (immutable)
	ID            string    `json:"id" yaml:"id"`                       // Time-derived identifier, never reused
	Name          string    `json:"name" yaml:"name"`                   // Display name (trimmed, non-empty)
	Category      string    `json:"category" yaml:"category"`           // Grouping key (trimmed, non-empty)
	Duration      int       `json:"duration" yaml:"duration"`           // Countdown length in seconds (immutable)
	RemainingTime int       `json:"remainingTime" yaml:"remainingTime"` // Seconds left, in [0, Duration]
	HalfwayAlert  bool      `json:"halfwayAlert" yaml:"halfwayAlert"`   // Notify when half of the duration is left
	IsRunning     bool      `json:"isRunning" yaml:"isRunning"`         // True only while ticking
	IsCompleted   bool      `json:"isCompleted" yaml:"isCompleted"`     // True once RemainingTime reached 0
}

// NewTimer creates an idle timer with the full duration remaining.
func NewTimer(id, name, category string, duration int, halfwayAlert bool, createdAt time.Time) Timer {
	return Timer{
		ID:            id,
		Name:          name,
		Category:      category,
		Duration:      duration,
		RemainingTime: duration,
		HalfwayAlert:  halfwayAlert,
		CreatedAt:     createdAt,
	}
}

// Phase returns the lifecycle phase derived from the run flags.
func (t *Timer) Phase() Phase {
	switch {
	case t.IsCompleted:
		return PhaseCompleted
	case t.IsRunning:
		return PhaseRunning
	case t.RemainingTime != t.Duration:
		return PhasePaused
	default:
		return PhaseIdle
	}
}

// HalfwayPoint returns the remaining time at which the halfway alert fires.
func (t *Timer) HalfwayPoint() int {
	return t.Duration / 2
}

// Progress returns the elapsed share of the duration in percent (0-100).
func (t *Timer) Progress() float64 {
	if t.IsCompleted || t.Duration <= 0 {
		return 100
	}
	return float64(t.Duration-t.RemainingTime) / float64(t.Duration) * 100
}

// CanStart returns true if a start action would change the timer.
func (t *Timer) CanStart() bool {
	return !t.IsRunning && !t.IsCompleted
}

// CanPause returns true if a pause action would change the timer.
func (t *Timer) CanPause() bool {
	return t.IsRunning
}

// CanReset returns true if a reset action would change the timer.
func (t *Timer) CanReset() bool {
	return t.IsCompleted || t.IsRunning || t.RemainingTime != t.Duration
}

// NeedsTicking returns true if a countdown instance should be running for the timer.
func (t *Timer) NeedsTicking() bool {
	return t.IsRunning && !t.IsCompleted && t.RemainingTime > 0
}

// StatusText returns the short status shown next to the timer name.
func (t *Timer) StatusText() string {
	if t.IsCompleted {
		return "Completed"
	}
	return fmt.Sprintf("%ds", t.RemainingTime)
}

// HistoryRecord is an immutable log entry created when a timer completes.
// Fields are ordered to minimize memory padding.
type HistoryRecord struct {
	CompletedAt time.Time `json:"completedAt" yaml:"completedAt"` // Completion time
	ID          string    `json:"id" yaml:"id"`                   // ID of the completed timer
	Name        string    `json:"name" yaml:"name"`
	Category    string    `json:"category" yaml:"category"`
	Duration    int       `json:"duration" yaml:"duration"` // Seconds
}

// NewHistoryRecord derives a history record from the timer's current fields.
func NewHistoryRecord(t Timer, completedAt time.Time) HistoryRecord {
	return HistoryRecord{
		ID:          t.ID,
		Name:        t.Name,
		Category:    t.Category,
		Duration:    t.Duration,
		CompletedAt: completedAt,
	}
}
