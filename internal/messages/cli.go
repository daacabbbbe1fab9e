package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "zc"
	// RootShort is the short description for the root command.
	RootShort = "Zenco AI companion CLI"
	RootLong  = "zc runs Zenco AI against your files, previews the proposed edits as diffs, and manages the zenco CLI installation."

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// StatusUse is the status command name.
	StatusUse   = "status"
	StatusShort = "Show the detected zenco installation status"

	StatusInstalledFmt    = "zenco %s is installed"
	StatusUnknownVersion  = "zenco is installed (version could not be determined)"
	StatusNotInstalled    = "zenco is not installed"
	StatusUpgradeFmt      = "an upgrade is required (installed %s, minimum %s)"
	StatusResolvedPathFmt = "resolved path: %s"

	// InstallUse is the install command name.
	InstallUse   = "install"
	InstallShort = "Install the zenco CLI"
	// UpgradeUse is the upgrade command name.
	UpgradeUse   = "upgrade"
	UpgradeShort = "Upgrade the zenco CLI to the latest version"

	InstallRequiresTerminal = "install prompts require an interactive terminal; see `zc instructions` for manual steps"
	InstallAlreadyFmt       = "zenco %s is already installed and meets the minimum version %s\n"
	InstallAbandoned        = "Install cancelled."
	InstallVerifiedFmt      = "zenco %s installed successfully.\n"
	InstallFailed           = "zenco was not detected after the install command finished"

	// RunUse is the run command usage.
	RunUse   = "run <file> [instruction...]"
	RunShort = "Run Zenco AI against a file and review the proposed edit"

	// InstructionsUse is the instructions command name.
	InstructionsUse   = "instructions"
	InstructionsShort = "Print manual installation instructions for the zenco CLI"

	// McpUse is the mcp command name.
	McpUse   = "mcp"
	McpShort = "Serve zenco instruction presets over MCP stdio"

	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check the health of the zenco toolchain"
)
