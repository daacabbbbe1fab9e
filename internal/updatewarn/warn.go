// Package updatewarn emits best-effort warnings when zc itself is outdated.
package updatewarn

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/paudelnirajan/zenco-companion/internal/messages"
	"github.com/paudelnirajan/zenco-companion/internal/update"
)

// CheckForUpdate is a seam for tests.
var CheckForUpdate = update.Check

// WarnIfOutdated emits update warnings to stderr when a newer release is available.
// It is a best-effort warning and never returns an error.
func WarnIfOutdated(ctx context.Context, currentVersion string, stderr io.Writer) {
	if strings.TrimSpace(os.Getenv(update.EnvNoNetwork)) != "" {
		return
	}
	if stderr == nil {
		stderr = io.Discard
	}

	warnColor := color.New(color.FgYellow)
	result, err := CheckForUpdate(ctx, currentVersion)
	if err != nil {
		if update.IsRateLimitError(err) {
			return
		}
		_, _ = warnColor.Fprintf(stderr, messages.UpdateWarnCheckFailedFmt, err)
		return
	}
	if result.CurrentIsDev {
		return
	}
	if result.Outdated {
		_, _ = warnColor.Fprintf(stderr, messages.UpdateWarnAvailableFmt, result.Latest, result.Current)
	}
}
