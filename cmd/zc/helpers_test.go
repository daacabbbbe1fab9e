package main

// NOTE: Tests in this file's package mutate package-level seams (isTerminal,
// newProbe, newUI, newSettingsStore, runInstallFlow, proposeEdit,
// checkForUpdate, runPromptServer). Do not use t.Parallel(). Each stub
// restores its seam via t.Cleanup.

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/paudelnirajan/zenco-companion/internal/installer"
	"github.com/paudelnirajan/zenco-companion/internal/probe"
	"github.com/paudelnirajan/zenco-companion/internal/prompt"
	"github.com/paudelnirajan/zenco-companion/internal/settings"
	"github.com/paudelnirajan/zenco-companion/internal/update"
	"github.com/paudelnirajan/zenco-companion/internal/updatewarn"
)

type staticProbe struct {
	status probe.Status
}

func (p staticProbe) Check(context.Context) probe.Status { return p.status }

func stubProbe(t *testing.T, statuses ...probe.Status) {
	t.Helper()
	orig := newProbe
	call := 0
	newProbe = func() statusChecker {
		status := statuses[call]
		if call < len(statuses)-1 {
			call++
		}
		return staticProbe{status}
	}
	t.Cleanup(func() { newProbe = orig })
}

func stubTerminal(t *testing.T, interactive bool) {
	t.Helper()
	orig := isTerminal
	isTerminal = func() bool { return interactive }
	t.Cleanup(func() { isTerminal = orig })
}

func stubInstallFlow(t *testing.T, outcome installer.Outcome, err error) (*int, *bool) {
	t.Helper()
	orig := runInstallFlow
	calls := 0
	var upgradeArg bool
	runInstallFlow = func(ctx context.Context, ui prompt.UI, store settingsStore, upgrade bool) (installer.Outcome, error) {
		calls++
		upgradeArg = upgrade
		return outcome, err
	}
	t.Cleanup(func() { runInstallFlow = orig })
	return &calls, &upgradeArg
}

func stubPropose(t *testing.T, output string, err error) *string {
	t.Helper()
	orig := proposeEdit
	var instructionArg string
	proposeEdit = func(ctx context.Context, path string, file string, instruction string) (string, error) {
		instructionArg = instruction
		return output, err
	}
	t.Cleanup(func() { proposeEdit = orig })
	return &instructionArg
}

// muteUpdateWarn keeps the best-effort release warning off the network.
func muteUpdateWarn(t *testing.T) {
	t.Helper()
	orig := updatewarn.CheckForUpdate
	updatewarn.CheckForUpdate = func(context.Context, string) (update.CheckResult, error) {
		return update.CheckResult{Current: "1.0.0", Latest: "1.0.0"}, nil
	}
	t.Cleanup(func() { updatewarn.CheckForUpdate = orig })
}

func stubUpdateCheck(t *testing.T, result update.CheckResult, err error) {
	t.Helper()
	orig := checkForUpdate
	checkForUpdate = func(context.Context, string) (update.CheckResult, error) {
		return result, err
	}
	t.Cleanup(func() { checkForUpdate = orig })
}

// fakeUI answers prompts from queues; an exhausted queue keeps defaults.
type fakeUI struct {
	selects  []string
	confirms []bool
	inputs   []string
	err      error
	notes    []string
	titles   []string
}

func (ui *fakeUI) Select(title string, options []string, current *string) error {
	ui.titles = append(ui.titles, title)
	if ui.err != nil {
		return ui.err
	}
	if len(ui.selects) > 0 {
		*current = ui.selects[0]
		ui.selects = ui.selects[1:]
	}
	return nil
}

func (ui *fakeUI) Confirm(title string, value *bool) error {
	ui.titles = append(ui.titles, title)
	if ui.err != nil {
		return ui.err
	}
	if len(ui.confirms) > 0 {
		*value = ui.confirms[0]
		ui.confirms = ui.confirms[1:]
	}
	return nil
}

func (ui *fakeUI) Input(title string, value *string) error {
	ui.titles = append(ui.titles, title)
	if ui.err != nil {
		return ui.err
	}
	if len(ui.inputs) > 0 {
		*value = ui.inputs[0]
		ui.inputs = ui.inputs[1:]
	}
	return nil
}

func (ui *fakeUI) Note(title string, body string) error {
	ui.notes = append(ui.notes, body)
	return ui.err
}

func stubUI(t *testing.T, ui *fakeUI) {
	t.Helper()
	orig := newUI
	newUI = func() prompt.UI { return ui }
	t.Cleanup(func() { newUI = orig })
}

// fakeStore is an in-memory settings store.
type fakeStore struct {
	value   settings.Settings
	loadErr error
	saveErr error
	sets    []bool
}

func (s *fakeStore) Load() (settings.Settings, error) { return s.value, s.loadErr }

func (s *fakeStore) SetInstallPromptDismissed(dismissed bool) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.value.InstallPromptDismissed = dismissed
	s.sets = append(s.sets, dismissed)
	return nil
}

func stubSettingsStore(t *testing.T, store *fakeStore) {
	t.Helper()
	orig := newSettingsStore
	newSettingsStore = func() settingsStore { return store }
	t.Cleanup(func() { newSettingsStore = orig })
}

// runCommand executes the root command with args and captures output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

var errBoom = errors.New("boom")
