// Package settings persists per-user companion preferences.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/paudelnirajan/zenco-companion/internal/fsutil"
	"github.com/paudelnirajan/zenco-companion/internal/messages"
)

const (
	dirName      = "zenco-companion"
	fileName     = "settings.toml"
	lockFileName = ".settings.lock"
)

// Settings holds the persisted per-user state. There is a single field and
// no schema versioning; unknown keys are ignored on load.
type Settings struct {
	// InstallPromptDismissed suppresses the implicit install prompt. It is
	// set only on an explicit "don't show again" and reset on any
	// successful install.
	InstallPromptDismissed bool `toml:"install_prompt_dismissed"`
}

// Store reads and writes the settings file under the user config directory.
type Store struct {
	// Dir overrides the settings directory; empty means the per-user
	// default.
	Dir string
}

// NewStore creates a Store using the per-user config directory.
func NewStore() *Store {
	return &Store{}
}

// Path returns the settings file path.
func (s *Store) Path() (string, error) {
	dir, err := s.dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

func (s *Store) dir() (string, error) {
	if s.Dir != "" {
		return s.Dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf(messages.SettingsResolveDirFmt, err)
	}
	return filepath.Join(base, dirName), nil
}

// Load reads the settings file. A missing file yields defaults.
func (s *Store) Load() (Settings, error) {
	path, err := s.Path()
	if err != nil {
		return Settings{}, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Settings{}, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf(messages.SettingsReadFmt, path, err)
	}
	var loaded Settings
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return Settings{}, fmt.Errorf(messages.SettingsParseFmt, path, err)
	}
	return loaded, nil
}

// Save writes the settings file atomically.
func (s *Store) Save(value Settings) error {
	dir, err := s.dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf(messages.SettingsCreateDirFmt, dir, err)
	}
	data, err := toml.Marshal(value)
	if err != nil {
		return fmt.Errorf(messages.SettingsEncodeFmt, err)
	}
	path := filepath.Join(dir, fileName)
	if err := fsutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf(messages.SettingsWriteFmt, path, err)
	}
	return nil
}

// Update applies fn to the current settings and persists the result. The
// read-modify-write runs under an advisory file lock so concurrent zc
// processes serialize access to the single shared flag.
func (s *Store) Update(fn func(*Settings)) error {
	dir, err := s.dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf(messages.SettingsCreateDirFmt, dir, err)
	}
	return withFileLock(filepath.Join(dir, lockFileName), func() error {
		current, err := s.Load()
		if err != nil {
			return err
		}
		fn(&current)
		return s.Save(current)
	})
}

// SetInstallPromptDismissed persists the dismissal flag.
func (s *Store) SetInstallPromptDismissed(dismissed bool) error {
	return s.Update(func(settings *Settings) {
		settings.InstallPromptDismissed = dismissed
	})
}
