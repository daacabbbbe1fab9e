package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/paudelnirajan/zenco-companion/internal/messages"
	"github.com/paudelnirajan/zenco-companion/internal/probe"
	"github.com/paudelnirajan/zenco-companion/internal/prompt"
	"github.com/paudelnirajan/zenco-companion/internal/session"
	"github.com/paudelnirajan/zenco-companion/internal/zenco"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.RunUse,
		Short: messages.RunShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			file := args[0]
			instruction := strings.TrimSpace(strings.Join(args[1:], " "))
			ui := newUI()

			if instruction == "" {
				if !isTerminal() {
					return errors.New(messages.RunInstructionRequired)
				}
				if err := ui.Input(messages.RunInstructionPrompt, &instruction); err != nil {
					if errors.Is(err, prompt.ErrCancelled) {
						return nil
					}
					return err
				}
				instruction = strings.TrimSpace(instruction)
				if instruction == "" {
					return errors.New(messages.RunInstructionRequired)
				}
			}

			status, err := ensureZenco(cmd, ui)
			if err != nil {
				return err
			}

			proposed, err := proposeEdit(cmd.Context(), status.ResolvedPath, file, instruction)
			if err != nil {
				return fmt.Errorf(messages.RunZencoFailedFmt, err)
			}

			m := &session.Manager{}
			edit, err := m.Begin(file, proposed)
			if err != nil {
				return err
			}
			if !edit.Changed() {
				_ = m.Discard()
				_, _ = fmt.Fprint(out, messages.RunNoChanges)
				return nil
			}

			_, _ = fmt.Fprintln(out, edit.Diff())

			if !isTerminal() {
				_ = m.Discard()
				_, _ = fmt.Fprint(out, messages.RunPreviewOnly)
				return nil
			}

			apply := true
			if err := ui.Confirm(fmt.Sprintf(messages.SessionApplyPromptFmt, file), &apply); err != nil {
				if errors.Is(err, prompt.ErrCancelled) {
					apply = false
				} else {
					return err
				}
			}
			if !apply {
				_ = m.Discard()
				_, _ = fmt.Fprint(out, messages.SessionDiscarded)
				return nil
			}
			if err := m.Apply(); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, messages.SessionAppliedFmt, file)
			return nil
		},
	}
}

// ensureZenco gates a run on a usable zenco install. A healthy probe passes
// straight through; otherwise the user is offered the install flow unless
// they previously dismissed it.
func ensureZenco(cmd *cobra.Command, ui prompt.UI) (probe.Status, error) {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	status := newProbe().Check(ctx)
	if status.Installed && !status.NeedsUpgrade {
		return status, nil
	}

	if !isTerminal() {
		if !status.Installed {
			return status, errors.New(messages.RunZencoNotInstalled)
		}
		// Outdated but present; run with what we have.
		return status, nil
	}

	store := newSettingsStore()
	current, err := store.Load()
	if err == nil && current.InstallPromptDismissed {
		if !status.Installed {
			return status, errors.New(messages.RunZencoNotInstalled)
		}
		return status, nil
	}

	action := messages.InstallPromptInstall
	title := messages.InstallPromptFmt
	if status.Installed {
		action = messages.InstallPromptUpgrade
		title = fmt.Sprintf(messages.UpgradePromptFmt, status.Version, zenco.MinimumVersion)
	}
	choice := action
	err = ui.Select(title, []string{
		action,
		messages.InstallPromptNotNow,
		messages.InstallPromptDontShowAgain,
	}, &choice)
	if err != nil && !errors.Is(err, prompt.ErrCancelled) {
		return status, err
	}
	if err == nil && choice == action {
		if _, err := runInstallFlow(ctx, ui, store, status.Installed); err != nil {
			return status, err
		}
		status = newProbe().Check(ctx)
		if !status.Installed {
			return status, errors.New(messages.RunZencoNotInstalled)
		}
		return status, nil
	}
	if err == nil && choice == messages.InstallPromptDontShowAgain {
		if err := store.SetInstallPromptDismissed(true); err != nil {
			_, _ = fmt.Fprintln(out, err)
		}
	}

	// "Not now", dismissal, or cancellation: run only if zenco exists at all.
	if !status.Installed {
		return status, errors.New(messages.RunZencoNotInstalled)
	}
	return status, nil
}
