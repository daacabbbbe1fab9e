package messages

// System messages for settings persistence, console sessions, updates, and MCP.
const (
	// SettingsResolveDirFmt formats user config directory resolution errors.
	SettingsResolveDirFmt = "resolve user config dir: %w"
	SettingsReadFmt       = "read settings %s: %w"
	SettingsParseFmt      = "parse settings %s: %w"
	SettingsEncodeFmt     = "encode settings: %w"
	SettingsWriteFmt      = "write settings %s: %w"
	SettingsCreateDirFmt  = "create settings dir %s: %w"
	SettingsOpenLockFmt   = "open settings lock %s: %w"
	SettingsLockFmt       = "lock settings %s: %w"
	SettingsLockTimeoutFmt = "timed out waiting for settings lock after %s"

	// ConsoleCommandRequired indicates a console session needs a command.
	ConsoleCommandRequired = "console session requires a command"
	ConsoleStartFmt        = "start interactive session: %w"

	// UpdateCreateRequestErrFmt formats request creation errors.
	UpdateCreateRequestErrFmt         = "create latest release request: %w"
	UpdateFetchLatestReleaseErrFmt    = "fetch latest release: %w"
	UpdateFetchLatestReleaseStatusFmt = "fetch latest release: unexpected status %s"
	UpdateDecodeLatestReleaseErrFmt   = "decode latest release: %w"
	UpdateLatestReleaseMissingTag     = "latest release missing tag_name"
	UpdateInvalidLatestReleaseTagFmt  = "invalid latest release tag %q: %v"
	UpdateInvalidCurrentVersionFmt    = "invalid current version %q: %v"

	// UpdateWarnCheckFailedFmt formats the best-effort update warning on failure.
	UpdateWarnCheckFailedFmt = "warning: update check failed: %v\n"
	UpdateWarnAvailableFmt   = "A newer zc is available: %s (you have %s). Download it from the releases page.\n"

	// McpRunPromptServerFailedFmt formats MCP prompt server failures.
	McpRunPromptServerFailedFmt = "run zenco prompt server: %w"
)
