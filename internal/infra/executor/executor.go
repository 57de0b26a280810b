// Package executor provides command execution functionality.
package executor

import (
	"context"
	"os/exec"

	"github.com/runoshun/timers/internal/domain"
)

// Client implements domain.CommandExecutor interface.
type Client struct{}

// NewClient creates a new command executor client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*Client)(nil)

// Execute runs the command and returns its combined output.
func (c *Client) Execute(ctx context.Context, cmd *domain.ExecCommand) ([]byte, error) {
	// #nosec G204 - the program comes from the user's own config file
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}
	return execCmd.CombinedOutput()
}
