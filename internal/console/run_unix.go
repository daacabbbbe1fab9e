//go:build !windows

package console

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/creack/pty"

	"github.com/paudelnirajan/zenco-companion/internal/messages"
)

// shellLine appends the sentinel echo to the user's command.
func shellLine(commandLine string) string {
	return commandLine + `; echo "` + messages.InstallSentinel + `"`
}

// run executes the shell line attached to a pseudo-terminal so the child
// behaves as it would in a real terminal (progress bars, prompts, colors).
func (s Interactive) run(ctx context.Context, line string) error {
	cmd := exec.CommandContext(ctx, "sh", "-c", line)
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf(messages.ConsoleStartFmt, err)
	}
	defer func() {
		_ = ptmx.Close()
	}()

	go func() {
		// Forward user input to the session; returns when stdin closes
		// or the pty is torn down.
		_, _ = io.Copy(ptmx, s.stdin())
	}()

	// Reading the pty returns EIO on Linux once the child exits; that is
	// the normal end-of-session signal, not a failure.
	_, _ = io.Copy(s.stdout(), ptmx)

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf(messages.InstallCommandFailedFmt, err)
	}
	return nil
}
