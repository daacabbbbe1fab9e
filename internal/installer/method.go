// Package installer selects an install strategy for the zenco CLI and
// drives the install/upgrade workflow.
package installer

// Method identifies an install strategy.
type Method int

const (
	// ManagedTool installs through pipx, keeping zenco in an isolated
	// environment.
	ManagedTool Method = iota
	// ManagedToolMissing means pipx is unavailable. It is a transient
	// state: the orchestrator must resolve it to another method before an
	// install command is built.
	ManagedToolMissing
	// UserScopedPackage installs with `pip install --user`.
	UserScopedPackage
	// Manual means the user follows written instructions instead.
	Manual
)

// String returns the method name for logs and errors.
func (m Method) String() string {
	switch m {
	case ManagedTool:
		return "pipx"
	case ManagedToolMissing:
		return "pipx-missing"
	case UserScopedPackage:
		return "pip-user"
	case Manual:
		return "manual"
	}
	return "unknown"
}
