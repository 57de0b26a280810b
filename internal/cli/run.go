package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/runoshun/timers/internal/app"
	"github.com/runoshun/timers/internal/domain"
	"github.com/runoshun/timers/internal/infra/notify"
	"github.com/runoshun/timers/internal/usecase"
)

// newRunCommand creates the run command, which counts down in the foreground.
func newRunCommand(c *app.Container) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "run [id...]",
		Short: "Count down running timers in the foreground",
		Long: `Run the countdown engine in the foreground and print notifications.

Timers given as arguments are started first. Without --watch the command
exits once no timer is running; with --watch it keeps waiting for timers
started from another terminal. Ctrl-C stops counting and keeps the
remaining time of every timer.

Examples:
  timers run
  timers run 1741944600000
  timers run --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			control := c.ControlTimerUseCase()
			for _, id := range args {
				if _, err := control.Execute(cmd.Context(), usecase.ControlTimerInput{
					TimerID: id,
					Op:      usecase.ControlStart,
				}); err != nil {
					return fmt.Errorf("start timer %s: %w", id, err)
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// Subscribe before the engine starts so no transition is missed.
			states := c.Store.Subscribe(1)
			running := len(c.Store.Snapshot().Running())
			if running == 0 && !watch {
				_, _ = fmt.Fprintln(w, "No running timers.")
				return nil
			}
			_, _ = fmt.Fprintf(w, "Counting down %d timer(s). Press Ctrl-C to stop.\n", running)

			e := c.NewEngine(notify.NewWriter(w))
			e.Start()
			msg := waitIdle(ctx, states, watch)
			// The engine writes to w until Stop returns.
			e.Stop()

			if msg != "" {
				_, _ = fmt.Fprintln(w, msg)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep running when no timer is running")

	return cmd
}

// waitIdle blocks until ctx is done or, unless watch is set, no timer is
// running. It returns the line to print.
func waitIdle(ctx context.Context, states <-chan domain.State, watch bool) string {
	for {
		select {
		case <-ctx.Done():
			return "Stopped."
		case state, ok := <-states:
			if !ok {
				return ""
			}
			if !watch && len(state.Running()) == 0 {
				return "All timers finished."
			}
		}
	}
}
