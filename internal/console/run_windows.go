//go:build windows

package console

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/paudelnirajan/zenco-companion/internal/messages"
)

// shellLine appends the sentinel echo to the user's command.
func shellLine(commandLine string) string {
	return commandLine + ` & echo ` + messages.InstallSentinel
}

// run executes the shell line with the session's streams attached directly;
// Windows has no pty equivalent worth the ConPTY plumbing for install
// commands.
func (s Interactive) run(ctx context.Context, line string) error {
	cmd := exec.CommandContext(ctx, "cmd", "/C", line)
	cmd.Stdin = s.stdin()
	cmd.Stdout = s.stdout()
	cmd.Stderr = s.stdout()
	if err := cmd.Run(); err != nil {
		return fmt.Errorf(messages.InstallCommandFailedFmt, err)
	}
	return nil
}
