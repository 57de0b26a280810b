package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/runoshun/timers/internal/app"
	"github.com/runoshun/timers/internal/domain"
)

// newTestContainer creates a container on a fresh data directory.
// configTOML, when non-empty, is written as the config file first.
func newTestContainer(t *testing.T, configTOML string) *app.Container {
	t.Helper()

	dataDir := t.TempDir()
	if configTOML != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, domain.ConfigFileName), []byte(configTOML), 0o600))
	}

	c, err := app.New(dataDir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// execute runs the root command with args and returns stdout and stderr.
func execute(c *app.Container, args ...string) (string, string, error) {
	root := NewRootCommand(c, "test")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// addTimer adds a timer through the CLI and returns its ID.
func addTimer(t *testing.T, c *app.Container, name, category, duration string) string {
	t.Helper()

	_, _, err := execute(c, "add", "--name", name, "--category", category, "--duration", duration)
	require.NoError(t, err)

	for _, timer := range c.Store.Snapshot().Timers {
		if timer.Name == name && timer.Category == category {
			return timer.ID
		}
	}
	t.Fatalf("timer %q not found after add", name)
	return ""
}
