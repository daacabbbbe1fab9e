package installer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallCommand(t *testing.T) {
	cases := []struct {
		name    string
		method  Method
		python  string
		upgrade bool
		want    string
	}{
		{"pipx install", ManagedTool, "", false, "pipx install zenco-ai"},
		{"pipx upgrade", ManagedTool, "", true, "pipx upgrade zenco-ai"},
		{"pip install", UserScopedPackage, "python3", false, "python3 -m pip install --user zenco-ai"},
		{"pip upgrade", UserScopedPackage, "python3", true, "python3 -m pip install --user --upgrade zenco-ai"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := InstallCommand(tc.method, tc.python, tc.upgrade)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestInstallCommandRejectsTransientMethods(t *testing.T) {
	for _, method := range []Method{ManagedToolMissing, Manual} {
		_, err := InstallCommand(method, "python3", false)
		assert.Error(t, err, "method %s must be resolved before building a command", method)
	}
}

func TestBootstrapCommand(t *testing.T) {
	assert.Equal(t, "brew install pipx && pipx ensurepath", BootstrapCommand(true, "python3"))
	assert.Equal(t,
		"python3 -m pip install --user pipx && python3 -m pipx ensurepath",
		BootstrapCommand(false, "python3"))
}

func TestManualInstructionsMentionEveryRoute(t *testing.T) {
	doc := ManualInstructions()
	assert.Contains(t, doc, "pipx install zenco-ai")
	assert.Contains(t, doc, "pip install --user zenco-ai")
	assert.Contains(t, doc, "zc status")
}
