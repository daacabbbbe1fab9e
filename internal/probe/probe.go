// Package probe classifies the zenco installation state.
package probe

import (
	"context"

	"github.com/paudelnirajan/zenco-companion/internal/execx"
	"github.com/paudelnirajan/zenco-companion/internal/resolve"
	"github.com/paudelnirajan/zenco-companion/internal/semver"
	"github.com/paudelnirajan/zenco-companion/internal/zenco"
)

// UnknownVersion is reported when zenco responded but its banner did not
// contain a parseable version token.
const UnknownVersion = "unknown"

// Status describes the zenco installation at the moment of a Check call.
// It is recomputed on every check and never cached across calls.
type Status struct {
	Installed bool
	// Version is the detected version, UnknownVersion when detection
	// succeeded but parsing failed, and empty when not installed.
	Version string
	// NeedsUpgrade is only meaningful when Installed is true.
	NeedsUpgrade bool
	// ResolvedPath is the best path candidate, populated even when
	// Installed is false so callers can attempt a best-effort invocation.
	ResolvedPath string
}

// PathResolver yields a candidate path to the zenco executable.
type PathResolver interface {
	Resolve(ctx context.Context) string
}

// Probe checks whether zenco is installed and recent enough.
type Probe struct {
	Resolver       PathResolver
	Runner         execx.Runner
	MinimumVersion string
}

// New creates a Probe backed by the real resolver and OS runner.
func New() *Probe {
	return &Probe{
		Resolver:       resolve.NewResolver(),
		Runner:         execx.RealRunner{},
		MinimumVersion: zenco.MinimumVersion,
	}
}

// Check resolves a path, invokes `<path> --help`, and classifies the result.
// It never fails: every failure mode collapses into Installed=false. The
// probe uses --help rather than a version flag because zenco's command
// surface does not guarantee one exists.
func (p *Probe) Check(ctx context.Context) Status {
	status := Status{ResolvedPath: p.Resolver.Resolve(ctx)}

	probeCtx, cancel := context.WithTimeout(ctx, execx.ProbeTimeout)
	defer cancel()
	out, err := p.Runner.Run(probeCtx, status.ResolvedPath, "--help")
	if err != nil {
		// The path may still be good: a failed invocation can mean a
		// broken install rather than an unresolved path.
		return status
	}

	status.Installed = true
	version, ok := zenco.ParseBannerVersion(out)
	if !ok {
		// Responsiveness is itself installation proof; an unparseable
		// banner must not be treated as "not installed", and the
		// optimistic no-upgrade default avoids nagging the user when
		// detection is merely imprecise.
		status.Version = UnknownVersion
		return status
	}
	status.Version = version
	status.NeedsUpgrade = semver.Compare(version, p.MinimumVersion) < 0
	return status
}
