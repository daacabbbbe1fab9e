package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/paudelnirajan/zenco-companion/internal/execx"
	"github.com/paudelnirajan/zenco-companion/internal/installer"
	"github.com/paudelnirajan/zenco-companion/internal/mcp"
	"github.com/paudelnirajan/zenco-companion/internal/messages"
	"github.com/paudelnirajan/zenco-companion/internal/probe"
	"github.com/paudelnirajan/zenco-companion/internal/prompt"
	"github.com/paudelnirajan/zenco-companion/internal/settings"
	"github.com/paudelnirajan/zenco-companion/internal/terminal"
	"github.com/paudelnirajan/zenco-companion/internal/update"
	"github.com/paudelnirajan/zenco-companion/internal/zenco"
)

// statusChecker probes the zenco installation.
type statusChecker interface {
	Check(ctx context.Context) probe.Status
}

// settingsStore is the slice of the settings layer the commands use.
type settingsStore interface {
	Load() (settings.Settings, error)
	SetInstallPromptDismissed(dismissed bool) error
}

// Package-level seams. Tests swap these and restore them via t.Cleanup.
var (
	isTerminal      = terminal.IsInteractive
	checkForUpdate  = update.Check
	runPromptServer = mcp.RunPromptServer

	newUI = func() prompt.UI { return prompt.NewHuhUI() }

	newProbe = func() statusChecker { return probe.New() }

	newSettingsStore = func() settingsStore { return settings.NewStore() }

	runInstallFlow = func(ctx context.Context, ui prompt.UI, store settingsStore, upgrade bool) (installer.Outcome, error) {
		return installer.New(ui, store).Run(ctx, upgrade)
	}

	proposeEdit = func(ctx context.Context, path string, file string, instruction string) (string, error) {
		return zenco.Propose(ctx, execx.RealRunner{}, path, file, instruction)
	}
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newInstallCmd())
	cmd.AddCommand(newUpgradeCmd())
	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newInstructionsCmd())
	cmd.AddCommand(newMcpCmd())

	return cmd
}
