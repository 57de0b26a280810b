package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/runoshun/timers/internal/app"
	"github.com/runoshun/timers/internal/usecase"
)

// runHint tells the user how to make started timers count down.
const runHint = "Run 'timers run' or open the TUI to count down."

// newAddCommand creates the add command for creating timers.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Name     string
		Duration string
		Category string
		Halfway  bool
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new timer",
		Long: `Create a new idle timer.

The duration is a whole number of seconds greater than zero. Name and
category are trimmed and must not be empty.

Examples:
  # Three minute tea timer
  timers add --name Tea --duration 180 --category Kitchen

  # Notify when half of the time is left
  timers add --name Focus --duration 1500 --category Work --halfway`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.AddTimerUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.AddTimerInput{
				Name:         opts.Name,
				Category:     opts.Category,
				Duration:     opts.Duration,
				HalfwayAlert: opts.Halfway,
			})
			if err != nil {
				return err
			}

			t := out.Timer
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created timer %s: %s (%s, %s)\n",
				t.ID, t.Name, t.Category, formatSeconds(t.Duration))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Name, "name", "n", "", "Timer name (required)")
	cmd.Flags().StringVarP(&opts.Duration, "duration", "d", "", "Duration in seconds (required)")
	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "Category (required)")
	cmd.Flags().BoolVar(&opts.Halfway, "halfway", false, "Notify when half of the duration is left")

	return cmd
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var categories []string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List timers by category",
		Long: `List timers grouped by category, in the order categories first appeared.
Within a category, incomplete timers come first, then by name.

Examples:
  timers list
  timers list --category Kitchen --category Work`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListTimersUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTimersInput{
				Categories: categories,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Categories) == 0 {
				_, _ = fmt.Fprintln(w, "No timers yet. Create one with 'timers add'.")
				return nil
			}
			if len(out.Groups) == 0 {
				_, _ = fmt.Fprintln(w, "No timers in the selected categories.")
				return nil
			}
			printTimerGroups(w, out.Groups)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&categories, "category", "c", nil, "Show only this category (repeatable)")

	return cmd
}

// printTimerGroups prints one table per category.
func printTimerGroups(w io.Writer, groups []usecase.TimerGroup) {
	for i, g := range groups {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		_, _ = fmt.Fprintf(w, "%s (%d/%d incomplete)\n", g.Category, g.Plan.Incomplete, g.Plan.Total)

		tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
		_, _ = fmt.Fprintln(tw, "ID\tNAME\tSTATE\tREMAINING\tPROGRESS")
		for _, t := range g.Timers {
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				t.ID,
				t.Name,
				t.Phase().Display(),
				t.StatusText(),
				progressBar(t.Progress(), 10),
			)
		}
		_ = tw.Flush()
	}
}

// controlDef describes one single-timer control command.
type controlDef struct {
	op    usecase.ControlOp
	short string
	done  string // Past tense used in the result line
}

var (
	controlStart = controlDef{op: usecase.ControlStart, short: "Start a timer", done: "Started"}
	controlPause = controlDef{op: usecase.ControlPause, short: "Pause a running timer", done: "Paused"}
	controlReset = controlDef{op: usecase.ControlReset, short: "Reset a timer to its full duration", done: "Reset"}
)

// newControlCommand creates the start, pause or reset command.
func newControlCommand(c *app.Container, def controlDef) *cobra.Command {
	return &cobra.Command{
		Use:   string(def.op) + " <id>",
		Short: def.short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.ControlTimerUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ControlTimerInput{
				TimerID: args[0],
				Op:      def.op,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			t := out.Timer
			if !out.Changed {
				_, _ = fmt.Fprintf(w, "Timer %s (%s) is %s; nothing to do\n",
					t.ID, t.Name, strings.ToLower(t.Phase().Display()))
				return nil
			}
			_, _ = fmt.Fprintf(w, "%s timer %s (%s): %s left\n", def.done, t.ID, t.Name, t.StatusText())
			if def.op == usecase.ControlStart {
				_, _ = fmt.Fprintln(w, runHint)
			}
			return nil
		},
	}
}

// newBulkCommand creates the bulk command with one subcommand per operation.
func newBulkCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bulk",
		Short: "Start, pause or reset a whole category",
		Long: `Apply one operation to every eligible timer of a category at once.

start affects timers that are neither running nor completed, pause affects
running timers, and reset affects completed or partially elapsed timers.`,
		// No RunE: shows subcommand list when called without arguments
	}

	for _, def := range []controlDef{controlStart, controlPause, controlReset} {
		cmd.AddCommand(newBulkOpCommand(c, def))
	}
	return cmd
}

func newBulkOpCommand(c *app.Container, def controlDef) *cobra.Command {
	return &cobra.Command{
		Use:   string(def.op) + " <category>",
		Short: "Bulk " + string(def.op) + " the eligible timers of a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.BulkControlUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.BulkControlInput{
				Category: args[0],
				Op:       string(def.op),
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.Plan.Total == 0 {
				_, _ = fmt.Fprintf(w, "No timers in category %q\n", out.Plan.Category)
				return nil
			}
			if len(out.Affected) == 0 {
				_, _ = fmt.Fprintf(w, "No timers in %s to %s\n", out.Plan.Category, def.op)
				return nil
			}
			_, _ = fmt.Fprintf(w, "%s %d timer(s) in %s\n", def.done, len(out.Affected), out.Plan.Category)
			if def.op == usecase.ControlStart {
				_, _ = fmt.Fprintln(w, runHint)
			}
			return nil
		},
	}
}

// formatSeconds renders a duration in seconds as e.g. "3m0s".
func formatSeconds(seconds int) string {
	return (time.Duration(seconds) * time.Second).String()
}

// progressBar renders pct (0-100) as a fixed-width text bar.
func progressBar(pct float64, width int) string {
	pct = max(0, min(100, pct))
	filled := int(pct / 100 * float64(width))
	return fmt.Sprintf("[%s%s] %3.0f%%",
		strings.Repeat("#", filled),
		strings.Repeat("-", width-filled),
		pct,
	)
}
