package resolve

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
)

// System abstracts OS lookups needed by path resolution.
// This interface is intentionally package-local so resolution strategies can
// be unit tested with fake filesystems and environments; other packages
// define their own System interfaces with operations specific to their needs.
type System interface {
	Stat(name string) (os.FileInfo, error)
	Getenv(key string) string
	HomeDir() (string, error)
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Getenv returns the value of the environment variable named by key.
func (RealSystem) Getenv(key string) string {
	return os.Getenv(key)
}

// HomeDir returns the current user's home directory.
func (RealSystem) HomeDir() (string, error) {
	return homedir.Dir()
}
