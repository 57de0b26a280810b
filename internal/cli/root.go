// Package cli provides the command-line interface for timers.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runoshun/timers/internal/app"
)

// Command group IDs.
const (
	groupSetup   = "setup"
	groupTimers  = "timers"
	groupHistory = "history"
)

// dirFlag is the global flag selecting the data directory.
const dirFlag = "dir"

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for timers.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "timers",
		Short: "Categorized countdown timers",
		Long: `timers manages named countdown timers grouped by category.

Run without arguments to open the interactive TUI. Timers only count down
while the TUI or 'timers run' is active; the other commands edit the saved
timers and exit.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	// Parsed again by main before the container exists; declared here so cobra accepts it.
	root.PersistentFlags().String(dirFlag, "", "Data directory (default $XDG_CONFIG_HOME/timers)")

	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTimers, Title: "Timer Commands:"},
		&cobra.Group{ID: groupHistory, Title: "History Commands:"},
	)

	// Setup commands
	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	themeCmd := newThemeCommand(c)
	themeCmd.GroupID = groupSetup

	// Timer commands
	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTimers

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTimers

	startCmd := newControlCommand(c, controlStart)
	startCmd.GroupID = groupTimers

	pauseCmd := newControlCommand(c, controlPause)
	pauseCmd.GroupID = groupTimers

	resetCmd := newControlCommand(c, controlReset)
	resetCmd.GroupID = groupTimers

	bulkCmd := newBulkCommand(c)
	bulkCmd.GroupID = groupTimers

	runCmd := newRunCommand(c)
	runCmd.GroupID = groupTimers

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupTimers

	// History commands
	historyCmd := newHistoryCommand(c)
	historyCmd.GroupID = groupHistory

	root.AddCommand(
		configCmd,
		themeCmd,
		addCmd,
		listCmd,
		startCmd,
		pauseCmd,
		resetCmd,
		bulkCmd,
		runCmd,
		tuiCmd,
		historyCmd,
	)

	return root
}

// DataDirFromArgs returns the value of the --dir flag in args, or "" when absent.
// It runs before cobra parses the command line because the container needs
// the data directory first.
func DataDirFromArgs(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		if value, ok := strings.CutPrefix(arg, "--"+dirFlag+"="); ok {
			return value
		}
		if arg == "--"+dirFlag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}
