package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/timers/internal/domain"
	"github.com/runoshun/timers/internal/testutil"
	"github.com/runoshun/timers/internal/usecase"
)

func TestDefaultDataDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	dir, err := DefaultDataDir()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "timers"), dir)
}

func TestNew_FreshDataDir(t *testing.T) {
	dataDir := t.TempDir()

	c, err := New(dataDir)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	assert.Equal(t, filepath.Join(dataDir, "timers.json"), c.Config.StatePath)
	assert.Equal(t, filepath.Join(dataDir, "exports"), c.Config.ExportsDir)
	assert.Empty(t, c.Store.Snapshot().Timers)
	assert.Equal(t, domain.DefaultTickInterval, c.AppConfig.Engine.TickInterval)
}

func TestNew_PersistsAcrossContainers(t *testing.T) {
	dataDir := t.TempDir()

	first, err := New(dataDir)
	require.NoError(t, err)
	out, err := first.AddTimerUseCase().Execute(context.Background(), usecase.AddTimerInput{
		Name: "Tea", Category: "Kitchen", Duration: "180",
	})
	require.NoError(t, err)
	_, err = first.ControlTimerUseCase().Execute(context.Background(), usecase.ControlTimerInput{
		TimerID: out.Timer.ID, Op: usecase.ControlStart,
	})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := New(dataDir)
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	timer, ok := second.Store.Snapshot().Timer(out.Timer.ID)
	require.True(t, ok)
	assert.Equal(t, "Tea", timer.Name)
	assert.True(t, timer.IsRunning)
}

func TestNew_ConfigOverrides(t *testing.T) {
	dataDir := t.TempDir()
	content := "[engine]\ntick_interval = \"10ms\"\n[export]\ndir = \"/tmp/elsewhere\"\n[ui]\ntheme = \"dark\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, domain.ConfigFileName), []byte(content), 0o644))

	c, err := New(dataDir)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	assert.Equal(t, 10*time.Millisecond, c.AppConfig.Engine.TickInterval)
	assert.Equal(t, "/tmp/elsewhere", c.Config.ExportsDir)
	assert.Equal(t, domain.ThemeDark, c.ThemeUseCase().Current())
}

func TestNew_InvalidConfig(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, domain.ConfigFileName), []byte("[ui]\ntheme = \"neon\"\n"), 0o644))

	_, err := New(dataDir)

	assert.ErrorIs(t, err, domain.ErrInvalidTheme)
}

func TestNew_CorruptStateStartsEmpty(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, domain.StateFileName), []byte("{"), 0o600))

	c, err := New(dataDir)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	assert.Empty(t, c.Store.Snapshot().Timers)
}

func TestContainer_EngineCountsDown(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, domain.ConfigFileName), []byte("[engine]\ntick_interval = \"5ms\"\n"), 0o644))

	c, err := New(dataDir)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()

	notes := c.Notifications.Subscribe(4)
	out, err := c.AddTimerUseCase().Execute(context.Background(), usecase.AddTimerInput{
		Name: "Quick", Category: "Test", Duration: "2",
	})
	require.NoError(t, err)

	e := c.NewEngine()
	e.Start()
	defer e.Stop()
	c.Store.Dispatch(domain.StartTimer(out.Timer.ID))

	select {
	case n := <-notes:
		assert.Equal(t, domain.NotificationCompleted, n.Kind)
		assert.Equal(t, "Quick has finished!", n.Message)
	case <-time.After(2 * time.Second):
		t.Fatal("no completion notification")
	}

	require.Eventually(t, func() bool {
		return len(c.Store.Snapshot().History) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestContainer_EngineLogsEachNotificationOnce(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, domain.ConfigFileName), []byte("[engine]\ntick_interval = \"5ms\"\n"), 0o644))

	c, err := New(dataDir)
	require.NoError(t, err)
	defer func() { _ = c.Close() }()
	logger := &testutil.MockLogger{}
	c.TimerLog = logger

	notes := c.Notifications.Subscribe(4)
	out, err := c.AddTimerUseCase().Execute(context.Background(), usecase.AddTimerInput{
		Name: "Quick", Category: "Test", Duration: "2",
	})
	require.NoError(t, err)

	e := c.NewEngine()
	e.Start()
	defer e.Stop()
	c.Store.Dispatch(domain.StartTimer(out.Timer.ID))

	received := 0
	for done := false; !done; {
		select {
		case n := <-notes:
			received++
			done = n.Kind == domain.NotificationCompleted
		case <-time.After(2 * time.Second):
			t.Fatal("no completion notification")
		}
	}

	logged := 0
	for _, entry := range logger.Entries() {
		if entry.Category == "notify" {
			logged++
		}
	}
	assert.Equal(t, received, logged)
}

func TestContainer_EngineRunsNotifyCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}
	dataDir := t.TempDir()
	outFile := filepath.Join(dataDir, "notified.txt")
	cfg := fmt.Sprintf("[engine]\ntick_interval = \"5ms\"\n\n[notify]\ncommand = ['sh', '-c', 'printf \"%%s\" \"$0\" >> %s', '{message}']\n", outFile)
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, domain.ConfigFileName), []byte(cfg), 0o644))

	c, err := New(dataDir)
	require.NoError(t, err)

	out, err := c.AddTimerUseCase().Execute(context.Background(), usecase.AddTimerInput{
		Name: "Quick", Category: "Test", Duration: "1",
	})
	require.NoError(t, err)

	e := c.NewEngine()
	e.Start()
	c.Store.Dispatch(domain.StartTimer(out.Timer.ID))
	require.Eventually(t, func() bool {
		return len(c.Store.Snapshot().History) == 1
	}, 2*time.Second, 5*time.Millisecond)
	e.Stop()

	// Close waits for the command.
	require.NoError(t, c.Close())

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Equal(t, "Quick has finished!", string(data))
}
