package main

import (
	"strings"
	"testing"

	"github.com/paudelnirajan/zenco-companion/internal/installer"
	"github.com/paudelnirajan/zenco-companion/internal/probe"
)

func TestInstallRequiresTerminal(t *testing.T) {
	stubTerminal(t, false)

	_, err := runCommand(t, "install")
	if err == nil || !strings.Contains(err.Error(), "interactive terminal") {
		t.Fatalf("expected terminal error, got %v", err)
	}
}

func TestInstallAlreadyInstalled(t *testing.T) {
	stubTerminal(t, true)
	muteUpdateWarn(t)
	stubProbe(t, probe.Status{Installed: true, Version: "0.2.0", ResolvedPath: "zenco"})
	calls, _ := stubInstallFlow(t, installer.Verified, nil)

	out, err := runCommand(t, "install")
	if err != nil {
		t.Fatalf("install error: %v", err)
	}
	if !strings.Contains(out, "already installed") {
		t.Fatalf("expected already-installed notice, got %q", out)
	}
	if *calls != 0 {
		t.Fatalf("expected no install flow, got %d calls", *calls)
	}
}

func TestInstallRunsFlow(t *testing.T) {
	stubTerminal(t, true)
	muteUpdateWarn(t)
	stubProbe(t, probe.Status{Installed: false, ResolvedPath: "zenco"})
	stubUI(t, &fakeUI{})
	stubSettingsStore(t, &fakeStore{})
	calls, upgrade := stubInstallFlow(t, installer.Verified, nil)

	if _, err := runCommand(t, "install"); err != nil {
		t.Fatalf("install error: %v", err)
	}
	if *calls != 1 {
		t.Fatalf("expected 1 install flow call, got %d", *calls)
	}
	if *upgrade {
		t.Fatal("expected install, not upgrade")
	}
}

func TestInstallAbandoned(t *testing.T) {
	stubTerminal(t, true)
	muteUpdateWarn(t)
	stubProbe(t, probe.Status{Installed: false, ResolvedPath: "zenco"})
	stubUI(t, &fakeUI{})
	stubSettingsStore(t, &fakeStore{})
	stubInstallFlow(t, installer.Abandoned, nil)

	out, err := runCommand(t, "install")
	if err != nil {
		t.Fatalf("abandoned install should not error: %v", err)
	}
	if !strings.Contains(out, "Install cancelled.") {
		t.Fatalf("expected cancellation notice, got %q", out)
	}
}

func TestInstallFailed(t *testing.T) {
	stubTerminal(t, true)
	muteUpdateWarn(t)
	stubProbe(t, probe.Status{Installed: false, ResolvedPath: "zenco"})
	stubUI(t, &fakeUI{})
	stubSettingsStore(t, &fakeStore{})
	stubInstallFlow(t, installer.Failed, nil)

	_, err := runCommand(t, "install")
	if err == nil || !strings.Contains(err.Error(), "not detected") {
		t.Fatalf("expected failure error, got %v", err)
	}
}

func TestUpgradeOutdated(t *testing.T) {
	stubTerminal(t, true)
	muteUpdateWarn(t)
	stubProbe(t, probe.Status{Installed: true, Version: "0.0.1", NeedsUpgrade: true, ResolvedPath: "zenco"})
	stubUI(t, &fakeUI{})
	stubSettingsStore(t, &fakeStore{})
	calls, upgrade := stubInstallFlow(t, installer.Verified, nil)

	if _, err := runCommand(t, "upgrade"); err != nil {
		t.Fatalf("upgrade error: %v", err)
	}
	if *calls != 1 || !*upgrade {
		t.Fatalf("expected 1 upgrade call, got calls=%d upgrade=%v", *calls, *upgrade)
	}
}

func TestUpgradeNotInstalledBecomesInstall(t *testing.T) {
	stubTerminal(t, true)
	muteUpdateWarn(t)
	stubProbe(t, probe.Status{Installed: false, ResolvedPath: "zenco"})
	stubUI(t, &fakeUI{})
	stubSettingsStore(t, &fakeStore{})
	_, upgrade := stubInstallFlow(t, installer.Verified, nil)

	if _, err := runCommand(t, "upgrade"); err != nil {
		t.Fatalf("upgrade error: %v", err)
	}
	if *upgrade {
		t.Fatal("expected fresh install when zenco is missing")
	}
}

func TestInstallFlowError(t *testing.T) {
	stubTerminal(t, true)
	muteUpdateWarn(t)
	stubProbe(t, probe.Status{Installed: false, ResolvedPath: "zenco"})
	stubUI(t, &fakeUI{})
	stubSettingsStore(t, &fakeStore{})
	stubInstallFlow(t, installer.Failed, errBoom)

	_, err := runCommand(t, "install")
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected orchestration error, got %v", err)
	}
}
