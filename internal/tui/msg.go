package tui

import "github.com/runoshun/timers/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgStateChanged is sent when the store publishes a new state.
type MsgStateChanged struct {
	State domain.State
}

func (MsgStateChanged) sealed() {}

// MsgNotification is sent when the engine emits a notification.
type MsgNotification struct {
	Notification domain.Notification
}

func (MsgNotification) sealed() {}

// MsgTimerAdded is sent when the new timer form was saved.
type MsgTimerAdded struct {
	Timer domain.Timer
}

func (MsgTimerAdded) sealed() {}

// MsgFormInvalid is sent when the new timer form fails validation.
// The form stays open.
type MsgFormInvalid struct {
	Err error
}

func (MsgFormInvalid) sealed() {}

// MsgThemeChanged is sent when the theme was toggled.
type MsgThemeChanged struct {
	Theme domain.Theme
}

func (MsgThemeChanged) sealed() {}

// MsgExported is sent when a history export finished.
type MsgExported struct {
	Location string
	Records  int
	Exported bool
}

func (MsgExported) sealed() {}

// MsgInfo is sent to show a short message in the status line.
type MsgInfo struct {
	Text string
}

func (MsgInfo) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearError is sent to clear the current error message.
type MsgClearError struct{}

func (MsgClearError) sealed() {}
