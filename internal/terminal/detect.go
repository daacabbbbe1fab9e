// Package terminal answers whether zc can prompt the user.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether both standard streams are terminals.
// Prompts, diff review, and install sessions all require this; piped
// invocations fall back to non-interactive behavior.
func IsInteractive() bool {
	return isTerminalFile(os.Stdin) && isTerminalFile(os.Stdout)
}

func isTerminalFile(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}
