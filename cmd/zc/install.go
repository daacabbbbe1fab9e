package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paudelnirajan/zenco-companion/internal/installer"
	"github.com/paudelnirajan/zenco-companion/internal/messages"
	"github.com/paudelnirajan/zenco-companion/internal/updatewarn"
	"github.com/paudelnirajan/zenco-companion/internal/zenco"
)

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLifecycleCmd(cmd, false)
		},
	}
}

func newUpgradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.UpgradeUse,
		Short: messages.UpgradeShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLifecycleCmd(cmd, true)
		},
	}
}

// runLifecycleCmd drives an explicit install or upgrade. Unlike the implicit
// prompt in `zc run`, an explicit request skips the dismissal check.
func runLifecycleCmd(cmd *cobra.Command, upgrade bool) error {
	out := cmd.OutOrStdout()
	if !isTerminal() {
		return errors.New(messages.InstallRequiresTerminal)
	}
	updatewarn.WarnIfOutdated(cmd.Context(), Version, cmd.ErrOrStderr())

	status := newProbe().Check(cmd.Context())
	if status.Installed && !status.NeedsUpgrade && !upgrade {
		_, _ = fmt.Fprintf(out, messages.InstallAlreadyFmt, status.Version, zenco.MinimumVersion)
		return nil
	}
	// Upgrading something that is not installed is just an install, and
	// installing over an outdated install is an upgrade.
	if !status.Installed {
		upgrade = false
	} else if status.NeedsUpgrade {
		upgrade = true
	}

	outcome, err := runInstallFlow(cmd.Context(), newUI(), newSettingsStore(), upgrade)
	if err != nil {
		return err
	}
	switch outcome {
	case installer.Abandoned:
		_, _ = fmt.Fprintln(out, messages.InstallAbandoned)
		return nil
	case installer.Failed:
		return errors.New(messages.InstallFailed)
	}
	return nil
}
