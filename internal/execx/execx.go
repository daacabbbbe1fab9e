// Package execx runs external commands for probing and resolution.
package execx

import (
	"context"
	"os"
	"os/exec"
	"time"
)

// ProbeTimeout bounds lightweight detection invocations (`--help`,
// `--version`). Interactive install sessions are never run through a Runner
// and carry no timeout.
const ProbeTimeout = 5 * time.Second

// Runner executes a command and returns its combined output.
// This interface is intentionally small so lifecycle packages can be tested
// with scripted fakes instead of a real shell.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// RealRunner implements Runner using os/exec.
type RealRunner struct{}

// Run executes the command and returns combined stdout and stderr.
// NO_COLOR is set so tools don't emit ANSI sequences into parseable output.
func (RealRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	out, err := cmd.CombinedOutput()
	if ctx.Err() != nil {
		return string(out), ctx.Err()
	}
	return string(out), err
}

// RunFunc adapts a function into a Runner.
type RunFunc func(ctx context.Context, name string, args ...string) (string, error)

// Run calls the wrapped function.
func (f RunFunc) Run(ctx context.Context, name string, args ...string) (string, error) {
	return f(ctx, name, args...)
}
