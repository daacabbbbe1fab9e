package terminal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsInteractiveNoTTY(t *testing.T) {
	// Test runners detach stdin/stdout from a TTY, so the check must not
	// panic and usually reports false. The value itself is environmental.
	_ = IsInteractive()
}

func TestIsTerminalFile(t *testing.T) {
	if isTerminalFile(nil) {
		t.Fatal("nil file is never a terminal")
	}

	f, err := os.Create(filepath.Join(t.TempDir(), "plain"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if isTerminalFile(f) {
		t.Fatal("regular file is not a terminal")
	}
}
