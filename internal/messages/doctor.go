package messages

// Doctor messages for health checks and recommendations.
const (
	// DoctorHealthCheck is the doctor banner line.
	DoctorHealthCheck = "Checking zenco toolchain health...\n\n"

	DoctorCheckNameZenco    = "Zenco CLI"
	DoctorCheckNamePython   = "Python"
	DoctorCheckNamePipx     = "pipx"
	DoctorCheckNameBrew     = "Homebrew"
	DoctorCheckNameSettings = "Settings"
	DoctorCheckNameUpdate   = "Update"

	DoctorZencoInstalledFmt      = "zenco %s detected at %s"
	DoctorZencoUnknownVersionFmt = "zenco detected at %s but its version could not be parsed"
	DoctorZencoOutdatedFmt       = "zenco %s is older than the required %s"
	DoctorZencoOutdatedRecommend = "Run `zc upgrade` to upgrade it."
	DoctorZencoMissingFmt        = "zenco was not detected (best candidate path: %s)"
	DoctorZencoMissingRecommend  = "Run `zc install`, or see `zc instructions` for manual steps."

	DoctorPythonFoundFmt       = "Python 3 available as %q"
	DoctorPythonMissing        = "no Python 3 interpreter found on PATH"
	DoctorPythonRecommend      = "Install Python 3 to enable pip-based installs."
	DoctorPipxFoundFmt         = "pipx %s available"
	DoctorPipxMissing          = "pipx is not installed"
	DoctorPipxRecommend        = "pipx keeps zenco in an isolated environment; install it with `brew install pipx` or `python3 -m pip install --user pipx`."
	DoctorBrewFoundFmt         = "Homebrew available (%s)"
	DoctorBrewMissing          = "Homebrew is not installed"
	DoctorSettingsOKFmt        = "settings file %s parses cleanly"
	DoctorSettingsMissingFmt   = "no settings file yet (defaults in effect, would be written to %s)"
	DoctorSettingsInvalidFmt   = "settings file %s has a syntax error: %v"
	DoctorSettingsRecommend    = "Fix or delete the file; zc will recreate it with defaults."

	DoctorSettingsUnknownKeysFmt       = "settings file %s has unrecognized keys: %s"
	DoctorSettingsUnknownKeysRecommend = "Remove the keys, or upgrade zc if they came from a newer release."
	DoctorUpdateSkippedFmt     = "update check skipped (%s is set)"
	DoctorUpdateRateLimited    = "update check skipped (GitHub API rate limit)"
	DoctorUpdateFailedFmt      = "update check failed: %v"
	DoctorUpdateFailedRecommend = "Check network access, or re-run later."
	DoctorUpdateDevBuildFmt    = "running a dev build; latest release is %s"
	DoctorUpdateAvailableFmt   = "update available: %s (current %s)"
	DoctorUpdateAvailableRecommend = "Download the latest release from the zenco-companion releases page."
	DoctorUpToDateFmt          = "zc %s is up to date"

	DoctorStatusOKLabel   = "[ OK ]"
	DoctorStatusWarnLabel = "[WARN]"
	DoctorStatusFailLabel = "[FAIL]"

	DoctorResultLineFmt        = "%s %s: %s\n"
	DoctorRecommendationPrefix = "       -> "
	DoctorRecommendationIndent = "          "

	DoctorSummaryOK   = "\nAll checks passed."
	DoctorSummaryFail = "\nSome checks failed. See recommendations above."
	DoctorFailureError = "doctor found problems"
)
