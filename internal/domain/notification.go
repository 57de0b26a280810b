package domain

import (
	"fmt"
	"time"
)

// NotificationKind identifies why a notification was emitted.
type NotificationKind string

const (
	NotificationHalfway   NotificationKind = "halfway"
	NotificationCompleted NotificationKind = "completed"
)

// Notification is a fire-and-forget (title, message) pair about a timer.
// Fields are ordered to minimize memory padding.
type Notification struct {
	At      time.Time
	Kind    NotificationKind
	TimerID string
	Title   string
	Message string
}

// HalfwayNotification builds the notification for a timer reaching half of its duration.
func HalfwayNotification(t Timer, at time.Time) Notification {
	return Notification{
		Kind:    NotificationHalfway,
		TimerID: t.ID,
		Title:   "Halfway There!",
		Message: fmt.Sprintf("%s is at 50%%", t.Name),
		At:      at,
	}
}

// CompletedNotification builds the notification for a finished timer.
func CompletedNotification(t Timer, at time.Time) Notification {
	return Notification{
		Kind:    NotificationCompleted,
		TimerID: t.ID,
		Title:   "Timer Complete!",
		Message: fmt.Sprintf("%s has finished!", t.Name),
		At:      at,
	}
}

// String returns "title: message".
func (n Notification) String() string {
	return n.Title + ": " + n.Message
}
