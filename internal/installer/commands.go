package installer

import (
	"fmt"

	"github.com/paudelnirajan/zenco-companion/internal/messages"
	"github.com/paudelnirajan/zenco-companion/internal/zenco"
)

// InstallCommand builds the shell command line for a resolved method.
// python is the interpreter command name and is only consulted for
// UserScopedPackage. Transient and manual methods have no command.
func InstallCommand(method Method, python string, upgrade bool) (string, error) {
	switch method {
	case ManagedTool:
		verb := "install"
		if upgrade {
			verb = "upgrade"
		}
		return fmt.Sprintf("pipx %s %s", verb, zenco.Package), nil
	case UserScopedPackage:
		flags := "--user"
		if upgrade {
			flags += " --upgrade"
		}
		return fmt.Sprintf("%s -m pip install %s %s", python, flags, zenco.Package), nil
	}
	return "", fmt.Errorf(messages.InstallerMethodUnknownFmt, method)
}

// BootstrapCommand builds the command that installs pipx itself, preferring
// Homebrew when available.
func BootstrapCommand(brew bool, python string) string {
	if brew {
		return "brew install pipx && pipx ensurepath"
	}
	return fmt.Sprintf("%s -m pip install --user pipx && %s -m pipx ensurepath", python, python)
}
