package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/runoshun/timers/internal/app"
	"github.com/runoshun/timers/internal/domain"
	"github.com/runoshun/timers/internal/infra/export"
	"github.com/runoshun/timers/internal/usecase"
)

// stdoutTarget is the --out value that writes the export to stdout.
const stdoutTarget = "-"

// newHistoryCommand creates the history command.
func newHistoryCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Format string
		Out    string
		Export bool
	}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or export completed timers",
		Long: `Show completed timers grouped by day, newest day first.

With --export the whole history is written as JSON (or YAML with
--format yaml) to the exports directory, to --out DIR, or to stdout
with --out -.

Examples:
  timers history
  timers history --export
  timers history --export --format yaml --out -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.Export {
				return exportHistory(cmd, c, domain.ExportFormat(opts.Format), opts.Out)
			}

			uc := c.ShowHistoryUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowHistoryInput{})
			if err != nil {
				return err
			}
			printHistory(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.Export, "export", "e", false, "Export the history instead of printing it")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Export format: json or yaml (default from config)")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "Export directory, or - for stdout (default exports dir)")

	return cmd
}

// exportHistory runs the export use case. Exporter failures are reported
// but do not fail the command.
func exportHistory(cmd *cobra.Command, c *app.Container, format domain.ExportFormat, out string) error {
	if format == "" {
		format = c.AppConfig.Export.Format
	}

	var exporter domain.Exporter
	switch out {
	case "":
		// Container default
	case stdoutTarget:
		exporter = export.NewWriterExporter(cmd.OutOrStdout())
	default:
		exporter = export.NewFileExporter(out)
	}

	uc := c.ExportHistoryUseCase(exporter)
	res, err := uc.Execute(cmd.Context(), usecase.ExportHistoryInput{Format: format})
	if err != nil {
		return err
	}

	if !res.Exported {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Export failed; see the log for details.")
		return nil
	}
	if out != stdoutTarget {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d record(s) to %s\n", res.Records, res.Location)
	}
	return nil
}

// printHistory prints one table per day.
func printHistory(w io.Writer, out *usecase.ShowHistoryOutput) {
	if out.Total == 0 {
		_, _ = fmt.Fprintln(w, "No completed timers yet")
		return
	}

	for i, g := range out.Groups {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		_, _ = fmt.Fprintln(w, g.Title())

		tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
		for _, rec := range g.Records {
			_, _ = fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n",
				rec.CompletedAt.Local().Format("15:04"),
				rec.Name,
				rec.Category,
				formatSeconds(rec.Duration),
			)
		}
		_ = tw.Flush()
	}
}
