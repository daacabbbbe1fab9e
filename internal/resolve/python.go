package resolve

import (
	"context"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/paudelnirajan/zenco-companion/internal/execx"
)

// pythonCandidates are tried in order when looking for a Python 3
// interpreter. `py` is the Windows launcher.
var pythonCandidates = []string{"python3", "python", "py"}

// FindPython returns the first command on PATH that reports itself as a
// Python 3 interpreter. The version check guards against environments where
// an unrelated or Python 2 binary occupies a conventional name.
func FindPython(ctx context.Context, runner execx.Runner) (string, bool) {
	for _, candidate := range pythonCandidates {
		probeCtx, cancel := context.WithTimeout(ctx, execx.ProbeTimeout)
		out, err := runner.Run(probeCtx, candidate, "--version")
		cancel()
		if err != nil {
			continue
		}
		if strings.Contains(out, "Python 3") {
			return candidate, true
		}
	}
	return "", false
}

// pythonUserScriptsDir asks the interpreter for its per-user base directory
// and joins the platform scripts subdirectory.
func pythonUserScriptsDir(ctx context.Context, runner execx.Runner, python string) (string, bool) {
	probeCtx, cancel := context.WithTimeout(ctx, execx.ProbeTimeout)
	defer cancel()
	out, err := runner.Run(probeCtx, python, "-c", "import site; print(site.USER_BASE)")
	if err != nil {
		return "", false
	}
	base := strings.TrimSpace(out)
	if base == "" {
		return "", false
	}
	if runtime.GOOS == "windows" {
		return filepath.Join(base, "Scripts"), true
	}
	return filepath.Join(base, "bin"), true
}
