// Package session holds a pending zenco edit awaiting user review.
package session

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/aymanbagabas/go-udiff"

	"github.com/paudelnirajan/zenco-companion/internal/messages"
)

// ErrActive is returned when a new session is begun while one is pending.
var ErrActive = errors.New(messages.SessionActive)

// ErrNotActive is returned when Apply or Discard is called with no session.
var ErrNotActive = errors.New(messages.SessionNotActive)

// Edit is one pending proposed edit for a single file.
type Edit struct {
	Path     string
	original string
	proposed string
	// diskSum guards against the file changing on disk between propose
	// and apply.
	diskSum [sha256.Size]byte
}

// Changed reports whether the proposal differs from the original content.
func (e *Edit) Changed() bool {
	return e.original != e.proposed
}

// Diff returns a unified diff of the pending edit.
func (e *Edit) Diff() string {
	return udiff.Unified(e.Path+" (current)", e.Path+" (proposed)", e.original, e.proposed)
}

// Manager owns at most one in-flight edit session. The pending result is an
// explicit object rather than shared mutable state, and a second concurrent
// workflow is rejected instead of silently overwriting the first.
type Manager struct {
	mu      sync.Mutex
	pending *Edit
}

// Begin reads the file and opens a session with the proposed content.
func (m *Manager) Begin(path string, proposed string) (*Edit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pending != nil {
		return nil, ErrActive
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.SessionReadFileFmt, path, err)
	}
	edit := &Edit{
		Path:     path,
		original: string(data),
		proposed: proposed,
		diskSum:  sha256.Sum256(data),
	}
	m.pending = edit
	return edit, nil
}

// Pending returns the in-flight edit, if any.
func (m *Manager) Pending() *Edit {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending
}

// Apply writes the proposed content to the file and closes the session.
// It refuses to write when the file changed on disk while the edit was
// pending.
func (m *Manager) Apply() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pending == nil {
		return ErrNotActive
	}
	edit := m.pending

	current, err := os.ReadFile(edit.Path)
	if err != nil {
		return fmt.Errorf(messages.SessionReadFileFmt, edit.Path, err)
	}
	if sha256.Sum256(current) != edit.diskSum {
		m.pending = nil
		return errors.New(messages.SessionChangedOnDisk)
	}

	info, err := os.Stat(edit.Path)
	if err != nil {
		return fmt.Errorf(messages.SessionReadFileFmt, edit.Path, err)
	}
	if err := os.WriteFile(edit.Path, []byte(edit.proposed), info.Mode().Perm()); err != nil {
		return fmt.Errorf(messages.SessionWriteFileFmt, edit.Path, err)
	}
	m.pending = nil
	return nil
}

// Discard closes the session without touching the file.
func (m *Manager) Discard() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pending == nil {
		return ErrNotActive
	}
	m.pending = nil
	return nil
}
