package domain

import (
	"context"
	"strings"
)

// ExecCommand represents an external command to be executed.
// This type is used to pass command information between layers
// without exposing implementation details.
type ExecCommand struct {
	Program string
	Dir     string
	Args    []string
}

// CommandExecutor runs external commands.
type CommandExecutor interface {
	// Execute runs cmd and returns its combined output.
	Execute(ctx context.Context, cmd *ExecCommand) ([]byte, error)
}

// Placeholders expanded by NotifyCommand.
const (
	PlaceholderTitle   = "{title}"
	PlaceholderMessage = "{message}"
	PlaceholderTimerID = "{id}"
	PlaceholderKind    = "{kind}"
)

// NotifyCommand builds the command for n from an argv template such as
// ["notify-send", "{title}", "{message}"]. It returns false for an empty
// template.
func NotifyCommand(template []string, n Notification) (*ExecCommand, bool) {
	if len(template) == 0 || strings.TrimSpace(template[0]) == "" {
		return nil, false
	}
	r := strings.NewReplacer(
		PlaceholderTitle, n.Title,
		PlaceholderMessage, n.Message,
		PlaceholderTimerID, n.TimerID,
		PlaceholderKind, string(n.Kind),
	)
	args := make([]string, 0, len(template)-1)
	for _, a := range template[1:] {
		args = append(args, r.Replace(a))
	}
	return &ExecCommand{Program: template[0], Args: args}, true
}
