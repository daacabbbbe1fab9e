// Package zenco holds the product contract for the external Zenco AI CLI.
package zenco

import (
	"regexp"
	"runtime"
)

const (
	// Command is the zenco executable name as invoked from a shell.
	Command = "zenco"
	// Package is the PyPI distribution that provides the zenco CLI.
	Package = "zenco-ai"
	// MinimumVersion is the oldest zenco release this companion supports.
	MinimumVersion = "0.1.0"
)

// versionBanner matches the version token zenco embeds in its --help output,
// e.g. "Zenco AI v0.4.2". The CLI has no dedicated version flag, so the
// banner is the only detection contract we have; a changed banner format is
// tolerated (see probe), not fatal.
var versionBanner = regexp.MustCompile(`Zenco AI v(\d+\.\d+\.\d+)`)

// ParseBannerVersion extracts the version token from free-text help output.
func ParseBannerVersion(output string) (string, bool) {
	m := versionBanner.FindStringSubmatch(output)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ExecutableName returns the platform-appropriate zenco binary filename.
func ExecutableName() string {
	if runtime.GOOS == "windows" {
		return Command + ".exe"
	}
	return Command
}
