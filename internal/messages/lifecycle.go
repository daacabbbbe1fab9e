package messages

// Lifecycle messages for resolution, probing, and install orchestration.
const (
	InstallerPrompterRequired = "installer requires a prompter"
	InstallerProbeRequired    = "installer requires an installation probe"
	InstallerConsoleRequired  = "installer requires a console session"
	InstallerMethodUnknownFmt = "unknown install method %q"

	// InstallPromptFmt asks whether to install zenco.
	InstallPromptFmt = "Zenco AI requires the zenco CLI (not detected). Install it now?"
	// UpgradePromptFmt asks whether to upgrade an outdated zenco.
	UpgradePromptFmt = "zenco %s is older than the required %s. Upgrade it now?"
	// InstallPromptDontShowAgain is the dismissal choice label.
	InstallPromptDontShowAgain = "Don't show again"
	InstallPromptInstall       = "Install"
	InstallPromptUpgrade       = "Upgrade"
	InstallPromptNotNow        = "Not now"

	// BootstrapPromptTitle asks how to proceed when pipx is missing.
	BootstrapPromptTitle   = "pipx is not installed. How would you like to proceed?"
	BootstrapChoicePipx    = "Install pipx first (recommended)"
	BootstrapChoicePip     = "Use pip --user instead"
	BootstrapChoiceAbandon = "Cancel"
	// BootstrapDonePrompt asks for confirmation after the pipx bootstrap ran.
	BootstrapDonePrompt      = "Did the pipx install finish successfully?"
	BootstrapStillMissing    = "pipx is still not detected; falling back to pip --user.\n"
	BootstrapFallbackNotice  = "Continuing with pip --user.\n"
	BootstrapNoPythonAborted = "no Python 3 interpreter was found; cannot build an install command"

	// ConfirmInstallCommandFmt shows the install command before running it.
	ConfirmInstallCommandFmt = "Run `%s` in a terminal session?"
	// VerifyPrompt asks whether the install command completed.
	VerifyPrompt            = "Has the install command finished?"
	VerifyChoiceDone        = "Yes, verify now"
	VerifyChoiceManual      = "Show manual instructions"
	VerifyChoiceCancel      = "Cancel"
	VerifyPathRefreshHint   = "zenco still isn't detected. If the install succeeded, your shell may be caching an old PATH; restart the terminal and run `zc status`.\n"
	InstallSentinel         = "zenco install command finished"
	InstallSessionHeaderFmt = "Running: %s\n"

	InstallCommandFailedFmt = "install command failed: %w"
)
