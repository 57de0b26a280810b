// Package main is the entry point for the timers CLI.
package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/runoshun/timers/internal/app"
	"github.com/runoshun/timers/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	args := os.Args[1:]

	// Create dependency injection container
	container, err := app.New(cli.DataDirFromArgs(args))
	if err != nil {
		// A broken config file must not block help or the template
		if canRunWithoutContainer(args) {
			return cli.NewRootCommand(nil, version).Execute()
		}
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}

// canRunWithoutContainer reports whether args only ask for help, the
// version or the config template.
func canRunWithoutContainer(args []string) bool {
	if len(args) > 0 && args[0] == "help" {
		return true
	}
	if len(args) >= 2 && args[0] == "config" && args[1] == "template" {
		return true
	}
	return slices.ContainsFunc(args, func(arg string) bool {
		return arg == "--version" || arg == "-v" || arg == "--help" || arg == "-h"
	})
}
