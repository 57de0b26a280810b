package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/timers/internal/app"
	"github.com/runoshun/timers/internal/usecase"
)

// newThemeCommand creates the theme command.
func newThemeCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [light|dark|toggle]",
		Short: "Show or change the display theme",
		Long: `Show the active display theme, or set it to light, dark or the other mode.
The choice is saved and used by the TUI.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var in usecase.ThemeInput
			if len(args) == 1 {
				if args[0] == "toggle" {
					in.Toggle = true
				} else {
					in.Mode = args[0]
				}
			}

			uc := c.ThemeUseCase()
			out, err := uc.Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch {
			case len(args) == 0:
				_, _ = fmt.Fprintf(w, "Theme: %s\n", out.Theme.Mode)
			case out.Changed:
				_, _ = fmt.Fprintf(w, "Theme set to %s\n", out.Theme.Mode)
			default:
				_, _ = fmt.Fprintf(w, "Theme is already %s\n", out.Theme.Mode)
			}
			return nil
		},
	}
}
