// Package resolve locates the zenco executable across install strategies.
package resolve

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/paudelnirajan/zenco-companion/internal/execx"
	"github.com/paudelnirajan/zenco-companion/internal/zenco"
)

// Resolver discovers a usable path to the zenco executable.
type Resolver struct {
	Runner execx.Runner
	System System
}

// NewResolver creates a Resolver backed by the real OS.
func NewResolver() *Resolver {
	return &Resolver{Runner: execx.RealRunner{}, System: RealSystem{}}
}

// strategy is a single capability probe. It returns a candidate path and
// whether the probe succeeded; probe failures are silent and resolution
// falls through to the next strategy.
type strategy struct {
	name  string
	probe func(ctx context.Context) (string, bool)
}

// Resolve tries each strategy in priority order and returns the first
// success. It is a total function: when every strategy fails it returns the
// bare command name as a last-resort guess. Callers must treat the result
// as a candidate, not a guarantee.
func (r *Resolver) Resolve(ctx context.Context) string {
	for _, s := range r.strategies() {
		if path, ok := s.probe(ctx); ok {
			return path
		}
	}
	return zenco.Command
}

func (r *Resolver) strategies() []strategy {
	return []strategy{
		{name: "path", probe: r.probeBareCommand},
		{name: "pipx", probe: r.probePipxBinDir},
		{name: "python-user", probe: r.probePythonUserScripts},
		{name: "well-known", probe: r.probeWellKnownDirs},
	}
}

// probeBareCommand checks whether zenco is reachable via the shell search
// path by attempting a lightweight invocation.
func (r *Resolver) probeBareCommand(ctx context.Context) (string, bool) {
	probeCtx, cancel := context.WithTimeout(ctx, execx.ProbeTimeout)
	defer cancel()
	if _, err := r.Runner.Run(probeCtx, zenco.Command, "--help"); err != nil {
		return "", false
	}
	return zenco.Command, true
}

// probePipxBinDir asks the pipx runtime for its binary directory.
func (r *Resolver) probePipxBinDir(ctx context.Context) (string, bool) {
	probeCtx, cancel := context.WithTimeout(ctx, execx.ProbeTimeout)
	defer cancel()
	out, err := r.Runner.Run(probeCtx, "pipx", "environment", "--value", "PIPX_BIN_DIR")
	if err != nil {
		return "", false
	}
	binDir := strings.TrimSpace(out)
	if binDir == "" {
		return "", false
	}
	return r.existing(filepath.Join(binDir, zenco.ExecutableName()))
}

// probePythonUserScripts checks the Python per-user scripts directory.
func (r *Resolver) probePythonUserScripts(ctx context.Context) (string, bool) {
	python, ok := FindPython(ctx, r.Runner)
	if !ok {
		return "", false
	}
	scriptsDir, ok := pythonUserScriptsDir(ctx, r.Runner, python)
	if !ok {
		return "", false
	}
	return r.existing(filepath.Join(scriptsDir, zenco.ExecutableName()))
}

// probeWellKnownDirs enumerates fixed OS and package-manager convention
// directories and returns the first that holds the executable.
func (r *Resolver) probeWellKnownDirs(_ context.Context) (string, bool) {
	exe := zenco.ExecutableName()
	for _, dir := range r.wellKnownDirs() {
		if path, ok := r.existing(filepath.Join(dir, exe)); ok {
			return path, true
		}
	}
	return "", false
}

// wellKnownDirs lists the fallback directories in probe order: per-user
// local bin, the pipx default venv bin for the zenco package, the two
// Homebrew prefixes (Apple Silicon and Intel), and the Windows per-user
// script directories.
func (r *Resolver) wellKnownDirs() []string {
	var dirs []string
	if home, err := r.System.HomeDir(); err == nil && home != "" {
		dirs = append(dirs,
			filepath.Join(home, ".local", "bin"),
			filepath.Join(home, ".local", "pipx", "venvs", zenco.Package, "bin"),
		)
	}
	dirs = append(dirs, "/opt/homebrew/bin", "/usr/local/bin")
	if appData := r.System.Getenv("APPDATA"); appData != "" {
		dirs = append(dirs, filepath.Join(appData, "Python", "Scripts"))
	}
	if localAppData := r.System.Getenv("LOCALAPPDATA"); localAppData != "" {
		dirs = append(dirs, filepath.Join(localAppData, "Programs", "Python", "Scripts"))
	}
	return dirs
}

// existing returns the path when it exists on disk as a regular file.
func (r *Resolver) existing(path string) (string, bool) {
	info, err := r.System.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}
