package cli

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/runoshun/timers/internal/app"
	"github.com/runoshun/timers/internal/tui"
)

// newTUICommand creates the tui command for launching the interactive TUI.
// This is the same as running `timers` without arguments.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive TUI",
		Long:  `Launch the interactive terminal user interface. Running timers count down while it is open.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
}

// launchTUI runs the TUI with a countdown engine attached to the store.
func launchTUI(c *app.Container) error {
	if c == nil {
		return errors.New("no container")
	}

	e := c.NewEngine()
	e.Start()
	defer e.Stop()

	m := tui.New(c)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
