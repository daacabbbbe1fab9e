package installer

import (
	"context"

	"github.com/paudelnirajan/zenco-companion/internal/execx"
)

// SelectMethod probes for the pipx runtime and picks the install strategy.
// pipx present means ManagedTool; absent means ManagedToolMissing, which the
// orchestrator resolves interactively.
func SelectMethod(ctx context.Context, runner execx.Runner) Method {
	if HasPipx(ctx, runner) {
		return ManagedTool
	}
	return ManagedToolMissing
}

// HasPipx reports whether the pipx runtime responds.
func HasPipx(ctx context.Context, runner execx.Runner) bool {
	probeCtx, cancel := context.WithTimeout(ctx, execx.ProbeTimeout)
	defer cancel()
	_, err := runner.Run(probeCtx, "pipx", "--version")
	return err == nil
}

// HasBrew reports whether Homebrew responds. It is consulted only to pick
// the pipx bootstrap command, never as an install strategy for zenco itself.
func HasBrew(ctx context.Context, runner execx.Runner) bool {
	probeCtx, cancel := context.WithTimeout(ctx, execx.ProbeTimeout)
	defer cancel()
	_, err := runner.Run(probeCtx, "brew", "--version")
	return err == nil
}
