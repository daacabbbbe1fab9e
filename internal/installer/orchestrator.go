package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/paudelnirajan/zenco-companion/internal/console"
	"github.com/paudelnirajan/zenco-companion/internal/execx"
	"github.com/paudelnirajan/zenco-companion/internal/messages"
	"github.com/paudelnirajan/zenco-companion/internal/probe"
	"github.com/paudelnirajan/zenco-companion/internal/prompt"
	"github.com/paudelnirajan/zenco-companion/internal/resolve"
)

// SettleDelay paces the completion prompt after the install command starts.
// Install sessions are user-visible and may keep running after control
// returns; elapsed wall-clock time is the only signal available before
// asking the user to confirm.
const SettleDelay = 10 * time.Second

// Outcome is the terminal state of an install/upgrade flow.
type Outcome int

const (
	// Verified means the post-install probe confirmed zenco.
	Verified Outcome = iota
	// Failed means zenco was still not detected after the install.
	Failed
	// Abandoned means the user cancelled at a confirmation point. It is
	// distinct from Failed: no error is reported for an intentional exit.
	Abandoned
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Verified:
		return "verified"
	case Failed:
		return "failed"
	case Abandoned:
		return "abandoned"
	}
	return "unknown"
}

// StatusChecker re-probes the installation for post-install verification.
type StatusChecker interface {
	Check(ctx context.Context) probe.Status
}

// DismissalStore clears the install-prompt dismissal flag after a
// successful install.
type DismissalStore interface {
	SetInstallPromptDismissed(dismissed bool) error
}

// Orchestrator drives one install/upgrade flow end to end: strategy
// selection, user confirmation, command execution in a visible session, and
// post-install verification. It is not reentrant; the command layer runs at
// most one flow at a time.
type Orchestrator struct {
	Runner   execx.Runner
	Probe    StatusChecker
	UI       prompt.UI
	Console  console.Session
	Settings DismissalStore
	Out      io.Writer

	// sleep is a test seam for the settle delay.
	sleep func(time.Duration)
}

// New creates an Orchestrator wired to the real system.
func New(ui prompt.UI, store DismissalStore) *Orchestrator {
	return &Orchestrator{
		Runner:   execx.RealRunner{},
		Probe:    probe.New(),
		UI:       ui,
		Console:  console.Interactive{},
		Settings: store,
		Out:      os.Stdout,
	}
}

func (o *Orchestrator) out() io.Writer {
	if o.Out != nil {
		return o.Out
	}
	return os.Stdout
}

func (o *Orchestrator) settle(d time.Duration) {
	if o.sleep != nil {
		o.sleep(d)
		return
	}
	time.Sleep(d)
}

// Run executes the install (or upgrade) flow and returns its outcome. A nil
// error accompanies every outcome except genuine orchestration failures
// (missing collaborators, prompt I/O errors); cancellation is Abandoned,
// not an error.
func (o *Orchestrator) Run(ctx context.Context, upgrade bool) (Outcome, error) {
	if err := o.validate(); err != nil {
		return Failed, err
	}

	method, terminal, err := o.selectStrategy(ctx)
	if err != nil {
		return Failed, err
	}
	if terminal != nil {
		return *terminal, nil
	}
	if method == Manual {
		return o.showManual()
	}

	python := ""
	if method == UserScopedPackage {
		name, ok := resolve.FindPython(ctx, o.Runner)
		if !ok {
			// No pipx and no Python: nothing to execute, hand the
			// user the manual document instead.
			_, _ = fmt.Fprintln(o.out(), messages.BootstrapNoPythonAborted)
			return o.showManual()
		}
		python = name
	}

	commandLine, err := InstallCommand(method, python, upgrade)
	if err != nil {
		return Failed, err
	}

	confirmed := true
	if err := o.UI.Confirm(fmt.Sprintf(messages.ConfirmInstallCommandFmt, commandLine), &confirmed); err != nil {
		return o.mapPromptErr(err)
	}
	if !confirmed {
		return Abandoned, nil
	}

	if err := o.Console.Run(ctx, commandLine); err != nil {
		// The session is user-visible; a nonzero exit is informational
		// here and verification below decides the real outcome.
		_, _ = fmt.Fprintln(o.out(), err)
	}

	o.settle(SettleDelay)
	return o.verify(ctx)
}

func (o *Orchestrator) validate() error {
	if o.UI == nil {
		return errors.New(messages.InstallerPrompterRequired)
	}
	if o.Probe == nil {
		return errors.New(messages.InstallerProbeRequired)
	}
	if o.Console == nil {
		return errors.New(messages.InstallerConsoleRequired)
	}
	return nil
}

// selectStrategy picks the install method, resolving ManagedToolMissing
// through the bootstrap dialogue. A non-nil terminal outcome ends the flow
// before any install command is built.
func (o *Orchestrator) selectStrategy(ctx context.Context) (Method, *Outcome, error) {
	method := SelectMethod(ctx, o.Runner)
	if method != ManagedToolMissing {
		return method, nil, nil
	}

	choice := messages.BootstrapChoicePipx
	err := o.UI.Select(messages.BootstrapPromptTitle, []string{
		messages.BootstrapChoicePipx,
		messages.BootstrapChoicePip,
		messages.BootstrapChoiceAbandon,
	}, &choice)
	if err != nil {
		outcome, err := o.mapPromptErr(err)
		return Manual, &outcome, err
	}

	switch choice {
	case messages.BootstrapChoicePip:
		_, _ = fmt.Fprint(o.out(), messages.BootstrapFallbackNotice)
		return UserScopedPackage, nil, nil
	case messages.BootstrapChoiceAbandon:
		abandoned := Abandoned
		return Manual, &abandoned, nil
	}
	return o.bootstrapPipx(ctx)
}

// bootstrapPipx installs pipx in an interactive session and re-probes for
// it. Interactive installs run in a visible shell the orchestrator cannot
// silently observe, so completion relies on explicit user confirmation.
// Every failure path falls back to UserScopedPackage, never to Failed.
func (o *Orchestrator) bootstrapPipx(ctx context.Context) (Method, *Outcome, error) {
	python, hasPython := resolve.FindPython(ctx, o.Runner)
	brew := HasBrew(ctx, o.Runner)
	if !brew && !hasPython {
		_, _ = fmt.Fprintln(o.out(), messages.BootstrapNoPythonAborted)
		return Manual, nil, nil
	}

	commandLine := BootstrapCommand(brew, python)
	if err := o.Console.Run(ctx, commandLine); err != nil {
		_, _ = fmt.Fprintln(o.out(), err)
	}

	done := true
	if err := o.UI.Confirm(messages.BootstrapDonePrompt, &done); err != nil {
		outcome, err := o.mapPromptErr(err)
		return Manual, &outcome, err
	}
	if done && HasPipx(ctx, o.Runner) {
		return ManagedTool, nil, nil
	}
	_, _ = fmt.Fprint(o.out(), messages.BootstrapStillMissing)
	return UserScopedPackage, nil, nil
}

// verify asks the user to confirm completion, then re-probes once. The
// orchestrator never loops automatically; the caller may retry.
func (o *Orchestrator) verify(ctx context.Context) (Outcome, error) {
	choice := messages.VerifyChoiceDone
	err := o.UI.Select(messages.VerifyPrompt, []string{
		messages.VerifyChoiceDone,
		messages.VerifyChoiceManual,
		messages.VerifyChoiceCancel,
	}, &choice)
	if err != nil {
		return o.mapPromptErr(err)
	}

	switch choice {
	case messages.VerifyChoiceManual:
		return o.showManual()
	case messages.VerifyChoiceCancel:
		return Abandoned, nil
	}

	status := o.Probe.Check(ctx)
	if !status.Installed {
		_, _ = fmt.Fprint(o.out(), messages.VerifyPathRefreshHint)
		return Failed, nil
	}

	if o.Settings != nil {
		// A completed install invalidates an earlier "don't show again".
		if err := o.Settings.SetInstallPromptDismissed(false); err != nil {
			return Verified, err
		}
	}
	_, _ = fmt.Fprintf(o.out(), messages.InstallVerifiedFmt, status.Version)
	return Verified, nil
}

// showManual displays the manual instructions document.
func (o *Orchestrator) showManual() (Outcome, error) {
	if err := o.UI.Note(messages.InstructionsShort, ManualInstructions()); err != nil {
		return o.mapPromptErr(err)
	}
	return Abandoned, nil
}

// mapPromptErr converts user cancellation into the Abandoned outcome and
// passes real prompt failures through.
func (o *Orchestrator) mapPromptErr(err error) (Outcome, error) {
	if errors.Is(err, prompt.ErrCancelled) {
		return Abandoned, nil
	}
	return Failed, err
}
