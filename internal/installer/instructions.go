package installer

import "github.com/paudelnirajan/zenco-companion/internal/zenco"

// ManualInstructions returns the manual install document shown when the
// user asks for it or when no installer tooling is available.
func ManualInstructions() string {
	return `Installing the zenco CLI manually

The companion could not install zenco automatically. Any one of the
following routes works; pipx is recommended because it keeps zenco in an
isolated environment.

1. pipx (recommended)

   brew install pipx && pipx ensurepath    # macOS with Homebrew
   python3 -m pip install --user pipx      # any platform with Python 3
   pipx install ` + zenco.Package + `

2. pip --user

   python3 -m pip install --user ` + zenco.Package + `

   Make sure your Python user scripts directory is on PATH
   (~/.local/bin on Linux and macOS, %APPDATA%\Python\Scripts on Windows).

After installing, restart your terminal so the shell picks up the new PATH,
then check the result:

   zc status

The minimum supported zenco version is ` + zenco.MinimumVersion + `.
`
}
