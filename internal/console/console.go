// Package console runs install commands in a user-visible interactive
// terminal session.
//
// Automation here is advisory, not coercive: commands run where the user
// can see and interact with them (pipx and pip may prompt, e.g. for
// permission escalation), instead of having their output captured
// programmatically.
package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/paudelnirajan/zenco-companion/internal/messages"
)

// Session runs a shell command line visibly for the user.
type Session interface {
	Run(ctx context.Context, commandLine string) error
}

// Interactive implements Session on the user's terminal.
type Interactive struct {
	// Stdin and Stdout default to the process streams when nil.
	Stdin  io.Reader
	Stdout io.Writer
}

func (s Interactive) stdin() io.Reader {
	if s.Stdin != nil {
		return s.Stdin
	}
	return os.Stdin
}

func (s Interactive) stdout() io.Writer {
	if s.Stdout != nil {
		return s.Stdout
	}
	return os.Stdout
}

// Run echoes the command, executes it interactively, and emits a completion
// sentinel line so the user can tell when the session is done.
func (s Interactive) Run(ctx context.Context, commandLine string) error {
	if strings.TrimSpace(commandLine) == "" {
		return fmt.Errorf(messages.ConsoleCommandRequired)
	}
	if _, err := fmt.Fprintf(s.stdout(), messages.InstallSessionHeaderFmt, commandLine); err != nil {
		return err
	}
	return s.run(ctx, shellLine(commandLine))
}
