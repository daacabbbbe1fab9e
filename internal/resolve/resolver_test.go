package resolve

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSystem struct {
	files  map[string]bool
	env    map[string]string
	home   string
	homeErr error
}

type fakeFileInfo struct {
	os.FileInfo
	dir bool
}

func (f fakeFileInfo) IsDir() bool { return f.dir }

func (s *fakeSystem) Stat(name string) (os.FileInfo, error) {
	if s.files[filepath.ToSlash(name)] {
		return fakeFileInfo{}, nil
	}
	return nil, os.ErrNotExist
}

func (s *fakeSystem) Getenv(key string) string { return s.env[key] }

func (s *fakeSystem) HomeDir() (string, error) {
	if s.homeErr != nil {
		return "", s.homeErr
	}
	return s.home, nil
}

// scriptedRunner maps "name arg1 arg2..." to canned output or an error.
type scriptedRunner struct {
	outputs map[string]string
	calls   []string
}

func (r *scriptedRunner) Run(_ context.Context, name string, args ...string) (string, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	r.calls = append(r.calls, key)
	out, ok := r.outputs[key]
	if !ok {
		return "", errors.New("command failed")
	}
	return out, nil
}

func newTestResolver(runner *scriptedRunner, system *fakeSystem) *Resolver {
	if system.files == nil {
		system.files = map[string]bool{}
	}
	if system.env == nil {
		system.env = map[string]string{}
	}
	return &Resolver{Runner: runner, System: system}
}

func TestResolveBareCommandFirst(t *testing.T) {
	runner := &scriptedRunner{outputs: map[string]string{
		"zenco --help": "Zenco AI v0.1.0",
	}}
	r := newTestResolver(runner, &fakeSystem{home: "/home/u"})

	path := r.Resolve(context.Background())

	assert.Equal(t, "zenco", path)
	require.Len(t, runner.calls, 1, "bare-command success must short-circuit later strategies")
}

func TestResolvePipxBinDir(t *testing.T) {
	runner := &scriptedRunner{outputs: map[string]string{
		"pipx environment --value PIPX_BIN_DIR": "/home/u/.local/bin\n",
	}}
	system := &fakeSystem{
		home:  "/home/u",
		files: map[string]bool{"/home/u/.local/bin/zenco": true},
	}
	r := newTestResolver(runner, system)

	path := r.Resolve(context.Background())

	assert.Equal(t, filepath.Join("/home/u/.local/bin", "zenco"), path)
}

func TestResolvePipxEmptyAnswerFallsThrough(t *testing.T) {
	runner := &scriptedRunner{outputs: map[string]string{
		"pipx environment --value PIPX_BIN_DIR": "\n",
	}}
	r := newTestResolver(runner, &fakeSystem{home: "/home/u"})

	assert.Equal(t, "zenco", r.Resolve(context.Background()))
}

func TestResolvePythonUserScripts(t *testing.T) {
	runner := &scriptedRunner{outputs: map[string]string{
		"python3 --version":                          "Python 3.12.1\n",
		"python3 -c import site; print(site.USER_BASE)": "/home/u/.local\n",
	}}
	system := &fakeSystem{
		home:  "/home/u",
		files: map[string]bool{"/home/u/.local/bin/zenco": true},
	}
	r := newTestResolver(runner, system)

	assert.Equal(t, filepath.Join("/home/u/.local", "bin", "zenco"), r.Resolve(context.Background()))
}

func TestResolveWellKnownDirs(t *testing.T) {
	runner := &scriptedRunner{outputs: map[string]string{}}
	system := &fakeSystem{
		home:  "/home/u",
		files: map[string]bool{"/opt/homebrew/bin/zenco": true},
	}
	r := newTestResolver(runner, system)

	assert.Equal(t, filepath.Join("/opt/homebrew/bin", "zenco"), r.Resolve(context.Background()))
}

func TestResolveWellKnownDirOrder(t *testing.T) {
	runner := &scriptedRunner{outputs: map[string]string{}}
	system := &fakeSystem{
		home: "/home/u",
		files: map[string]bool{
			"/home/u/.local/bin/zenco": true,
			"/opt/homebrew/bin/zenco":  true,
		},
	}
	r := newTestResolver(runner, system)

	assert.Equal(t, filepath.Join("/home/u", ".local", "bin", "zenco"), r.Resolve(context.Background()))
}

func TestResolveEverythingFailsReturnsBareName(t *testing.T) {
	runner := &scriptedRunner{outputs: map[string]string{}}
	r := newTestResolver(runner, &fakeSystem{homeErr: errors.New("no home")})

	path := r.Resolve(context.Background())

	assert.Equal(t, "zenco", path)
	assert.NotEmpty(t, path)
}

func TestResolveHonorsContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	runner := &scriptedRunner{outputs: map[string]string{}}
	r := newTestResolver(runner, &fakeSystem{home: "/home/u"})

	assert.Equal(t, "zenco", r.Resolve(ctx))
}
