package tui

import (
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/timers/internal/app"
	"github.com/runoshun/timers/internal/domain"
	"github.com/runoshun/timers/internal/store"
	"github.com/runoshun/timers/internal/testutil"
)

var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

// testEnv bundles a model with the doubles behind it.
type testEnv struct {
	model    *Model
	c        *app.Container
	prefs    *testutil.MockPreferenceStore
	exporter *testutil.MockExporter
}

func newTestEnv(t *testing.T, timers ...domain.Timer) *testEnv {
	t.Helper()

	clock := &testutil.MockClock{NowTime: testNow}
	s := store.New(domain.State{Timers: timers}, clock)
	prefs := testutil.NewMockPreferenceStore()
	exporter := &testutil.MockExporter{Location: "/exports/timer-history.json"}
	c := app.NewWithDeps(app.Config{DataDir: t.TempDir()}, s, clock, prefs, exporter, slog.New(slog.DiscardHandler))
	t.Cleanup(func() { _ = c.Close() })

	return &testEnv{model: New(c), c: c, prefs: prefs, exporter: exporter}
}

func timer(id, name, category string, duration int) domain.Timer {
	return domain.NewTimer(id, name, category, duration, false, testNow)
}

// press sends one key to the model and returns the resulting command.
func (e *testEnv) press(t *testing.T, k string) tea.Cmd {
	t.Helper()
	_, cmd := e.model.Update(keyMsg(k))
	return cmd
}

// run executes cmd and feeds its message back into the model.
func (e *testEnv) run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	if msg != nil {
		e.model.Update(msg)
	}
	return msg
}

// sync delivers the current store state to the model.
func (e *testEnv) sync() {
	e.model.Update(MsgStateChanged{State: e.c.Store.Snapshot()})
}

func (e *testEnv) timer(t *testing.T, id string) domain.Timer {
	t.Helper()
	got, ok := e.c.Store.Snapshot().Timer(id)
	require.True(t, ok, "timer %s", id)
	return got
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}
