package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/runoshun/timers/internal/app"
	"github.com/runoshun/timers/internal/domain"
	"github.com/runoshun/timers/internal/usecase"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Manage the timers configuration file and settings.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newConfigShowCommand(c))
	cmd.AddCommand(newConfigTemplateCommand())
	cmd.AddCommand(newConfigInitCommand(c))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the configuration file location and the effective configuration,
which is the defaults overlaid with the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ShowConfigUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowConfigInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, "[Config File]")
			if out.File.Exists {
				_, _ = fmt.Fprintf(w, "- %s\n", out.File.Path)
			} else {
				_, _ = fmt.Fprintf(w, "- %s (not found)\n", out.File.Path)
			}
			_, _ = fmt.Fprintln(w)

			_, _ = fmt.Fprintln(w, "[Effective Config]")
			return formatEffectiveConfig(w, out.EffectiveConfig)
		},
	}
}

// formatEffectiveConfig formats the effective config in TOML format.
func formatEffectiveConfig(w io.Writer, cfg *domain.Config) error {
	exportSection := map[string]any{"format": string(cfg.Export.Format)}
	if cfg.Export.Dir != "" {
		exportSection["dir"] = cfg.Export.Dir
	}

	output := map[string]any{
		"log":    map[string]any{"level": cfg.Log.Level},
		"engine": map[string]any{"tick_interval": cfg.Engine.TickInterval.String()},
		"ui":     map[string]any{"theme": string(cfg.UI.Theme)},
		"export": exportSection,
	}
	if len(cfg.Notify.Command) > 0 {
		output["notify"] = map[string]any{"command": cfg.Notify.Command}
	}

	if err := toml.NewEncoder(w).Encode(output); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// newConfigTemplateCommand creates the config template subcommand.
func newConfigTemplateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Output configuration template",
		Long: `Output the configuration file template to stdout.
It does not read existing configuration files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = fmt.Fprint(cmd.OutOrStdout(), domain.ConfigTemplate())
			return nil
		},
	}
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file",
		Long:  `Create config.toml in the data directory from the default template.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.InitConfigUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.InitConfigInput{})
			if err != nil {
				if errors.Is(err, domain.ErrConfigExists) {
					return fmt.Errorf("%w: %s", err, c.ConfigManager.Path())
				}
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", out.Path)
			return nil
		},
	}
}
