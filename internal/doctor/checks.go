package doctor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/paudelnirajan/zenco-companion/internal/execx"
	"github.com/paudelnirajan/zenco-companion/internal/installer"
	"github.com/paudelnirajan/zenco-companion/internal/messages"
	"github.com/paudelnirajan/zenco-companion/internal/probe"
	"github.com/paudelnirajan/zenco-companion/internal/resolve"
	"github.com/paudelnirajan/zenco-companion/internal/zenco"
)

// CheckZenco converts a probe status into a health check result.
func CheckZenco(st probe.Status) Result {
	switch {
	case !st.Installed:
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameZenco,
			Message:        fmt.Sprintf(messages.DoctorZencoMissingFmt, st.ResolvedPath),
			Recommendation: messages.DoctorZencoMissingRecommend,
		}
	case st.NeedsUpgrade:
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameZenco,
			Message:        fmt.Sprintf(messages.DoctorZencoOutdatedFmt, st.Version, zenco.MinimumVersion),
			Recommendation: messages.DoctorZencoOutdatedRecommend,
		}
	case st.Version == probe.UnknownVersion:
		return Result{
			Status:    StatusWarn,
			CheckName: messages.DoctorCheckNameZenco,
			Message:   fmt.Sprintf(messages.DoctorZencoUnknownVersionFmt, st.ResolvedPath),
		}
	default:
		return Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameZenco,
			Message:   fmt.Sprintf(messages.DoctorZencoInstalledFmt, st.Version, st.ResolvedPath),
		}
	}
}

// CheckPython reports whether a Python 3 interpreter is reachable on PATH.
func CheckPython(ctx context.Context, runner execx.Runner) Result {
	python, ok := resolve.FindPython(ctx, runner)
	if !ok {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNamePython,
			Message:        messages.DoctorPythonMissing,
			Recommendation: messages.DoctorPythonRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNamePython,
		Message:   fmt.Sprintf(messages.DoctorPythonFoundFmt, python),
	}
}

// CheckPipx reports whether pipx is installed.
func CheckPipx(ctx context.Context, runner execx.Runner) Result {
	out, err := runner.Run(ctx, "pipx", "--version")
	if err != nil {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNamePipx,
			Message:        messages.DoctorPipxMissing,
			Recommendation: messages.DoctorPipxRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNamePipx,
		Message:   fmt.Sprintf(messages.DoctorPipxFoundFmt, strings.TrimSpace(out)),
	}
}

// CheckBrew reports whether Homebrew is available. Homebrew is optional,
// so a missing install is informational rather than a warning.
func CheckBrew(ctx context.Context, runner execx.Runner) Result {
	if !installer.HasBrew(ctx, runner) {
		return Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameBrew,
			Message:   messages.DoctorBrewMissing,
		}
	}
	out, _ := runner.Run(ctx, "brew", "--version")
	version := strings.TrimSpace(out)
	if i := strings.IndexByte(version, '\n'); i >= 0 {
		version = version[:i]
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameBrew,
		Message:   fmt.Sprintf(messages.DoctorBrewFoundFmt, version),
	}
}

// SettingsFile abstracts the settings store for the settings check.
type SettingsFile interface {
	Path() (string, error)
}

// CheckSettings validates the on-disk settings file. A missing file is
// healthy; defaults apply until the first write.
func CheckSettings(store SettingsFile) Result {
	path, err := store.Path()
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameSettings,
			Message:        fmt.Sprintf(messages.DoctorSettingsInvalidFmt, path, err),
			Recommendation: messages.DoctorSettingsRecommend,
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameSettings,
			Message:   fmt.Sprintf(messages.DoctorSettingsMissingFmt, path),
		}
	}
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameSettings,
			Message:        fmt.Sprintf(messages.DoctorSettingsInvalidFmt, path, err),
			Recommendation: messages.DoctorSettingsRecommend,
		}
	}

	if err := validateSettingsSyntax(data); err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameSettings,
			Message:        fmt.Sprintf(messages.DoctorSettingsInvalidFmt, path, err),
			Recommendation: messages.DoctorSettingsRecommend,
		}
	}

	if unknown := settingsUnknownKeys(data); len(unknown) > 0 {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameSettings,
			Message:        fmt.Sprintf(messages.DoctorSettingsUnknownKeysFmt, path, strings.Join(unknown, ", ")),
			Recommendation: messages.DoctorSettingsUnknownKeysRecommend,
		}
	}

	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameSettings,
		Message:   fmt.Sprintf(messages.DoctorSettingsOKFmt, path),
	}
}
