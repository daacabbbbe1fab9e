package messages

// Run and edit-session messages.
const (
	// RunInstructionRequired indicates an empty instruction.
	RunInstructionRequired = "an instruction is required"
	// RunInstructionPrompt asks for an instruction when none was given.
	RunInstructionPrompt = "What should Zenco AI do with this file?"
	RunPreviewOnly       = "Not a terminal; printed the proposed edit without applying it.\n"

	RunZencoNotInstalled = "the zenco CLI is not installed; run `zc install` or see `zc instructions`"
	RunZencoFailedFmt    = "zenco failed: %w"
	RunNoChanges         = "zenco proposed no changes.\n"

	// SessionActive indicates a pending edit session already exists.
	SessionActive         = "another edit is already pending review; apply or discard it first"
	SessionNotActive      = "no edit session is active"
	SessionReadFileFmt    = "read %s: %w"
	SessionWriteFileFmt   = "apply edit to %s: %w"
	SessionChangedOnDisk  = "the file changed on disk while the edit was pending; discarding"
	SessionApplyPromptFmt = "Apply this edit to %s?"
	SessionAppliedFmt     = "Applied edit to %s.\n"
	SessionDiscarded      = "Edit discarded.\n"
)
