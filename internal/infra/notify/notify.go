// Package notify delivers timer notifications to their audiences.
// Every Notifier here returns without waiting on a slow consumer.
package notify

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/runoshun/timers/internal/domain"
)

var (
	_ domain.Notifier = (*Broadcaster)(nil)
	_ domain.Notifier = (*Writer)(nil)
	_ domain.Notifier = (*Log)(nil)
	_ domain.Notifier = Multi(nil)
	_ domain.Notifier = (*Command)(nil)
)

// DefaultCommandTimeout bounds one notification command.
const DefaultCommandTimeout = 10 * time.Second

// Broadcaster fans notifications out to subscribed channels.
// A subscriber whose buffer is full misses the notification.
type Broadcaster struct {
	subs   []chan domain.Notification
	mu     sync.Mutex
	closed bool
}

// NewBroadcaster creates an empty Broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{}
}

// Subscribe returns a channel that receives future notifications.
func (b *Broadcaster) Subscribe(buffer int) <-chan domain.Notification {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan domain.Notification, buffer)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch
	}
	b.subs = append(b.subs, ch)
	return ch
}

// Notify sends n to every subscriber without blocking.
func (b *Broadcaster) Notify(n domain.Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- n:
		default:
		}
	}
}

// Close closes all subscriber channels.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, ch := range b.subs {
		close(ch)
	}
	b.subs = nil
}

// Writer prints one line per notification.
type Writer struct {
	w  io.Writer
	mu sync.Mutex
}

// NewWriter creates a Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Notify writes "[15:04:05] Title: Message".
func (w *Writer) Notify(n domain.Notification) {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, _ = fmt.Fprintf(w.w, "[%s] %s\n", n.At.Format("15:04:05"), n.String())
}

// Log records notifications in the application log.
type Log struct {
	logger domain.Logger
}

// NewLog creates a Log notifier.
func NewLog(logger domain.Logger) *Log {
	return &Log{logger: logger}
}

// Notify logs n at info level under the "notify" category.
func (l *Log) Notify(n domain.Notification) {
	l.logger.Info(n.TimerID, "notify", fmt.Sprintf("%s: %s", n.Kind, n.String()))
}

// Multi delivers each notification to every notifier in order.
type Multi []domain.Notifier

// Notify implements domain.Notifier.
func (m Multi) Notify(n domain.Notification) {
	for _, notifier := range m {
		if notifier != nil {
			notifier.Notify(n)
		}
	}
}

// Command runs a user-configured program for each notification, e.g. a
// desktop notifier. Commands run in the background; failures are logged.
// Fields are ordered to minimize memory padding.
type Command struct {
	exec     domain.CommandExecutor
	logger   domain.Logger
	template []string
	wg       sync.WaitGroup
	timeout  time.Duration
}

// NewCommand creates a Command notifier for an argv template.
func NewCommand(exec domain.CommandExecutor, template []string, logger domain.Logger) *Command {
	return &Command{
		exec:     exec,
		logger:   logger,
		template: template,
		timeout:  DefaultCommandTimeout,
	}
}

// Notify starts the command for n and returns immediately.
func (c *Command) Notify(n domain.Notification) {
	cmd, ok := domain.NotifyCommand(c.template, n)
	if !ok {
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()

		out, err := c.exec.Execute(ctx, cmd)
		if err != nil && c.logger != nil {
			c.logger.Warn(n.TimerID, "notify", fmt.Sprintf("command %s failed: %v: %s",
				cmd.Program, err, strings.TrimSpace(string(out))))
		}
	}()
}

// Wait blocks until every started command has finished.
func (c *Command) Wait() {
	c.wg.Wait()
}
