// Package session manages the client-side session marker: the username
// recorded after a successful login or registration. Authentication
// itself is cookie based; the marker only tells the UI who is signed in.
//
// The store is an explicit dependency injected into whatever front end
// consumes the SDK, rather than ambient global state: login and register
// write through it, logout clears it, and reads go through the single
// Current accessor.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/diversion-social/diversion-go/domain"
)

// Store persists the session marker. Implementations must be safe for
// concurrent use; writes are last-writer-wins with no further
// synchronization guarantee.
type Store interface {
	// Current returns the stored session, or nil when signed out.
	Current() (*domain.Session, error)

	// Save records the session after login or registration.
	Save(session domain.Session) error

	// Clear removes the stored session. Clearing an empty store is a
	// no-op.
	Clear() error
}

// MemoryStore keeps the session marker in process memory. Useful for
// tests and for embedding the SDK where persistence is unwanted.
type MemoryStore struct {
	mu      sync.RWMutex
	session *domain.Session
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Current returns the stored session, or nil when signed out.
func (s *MemoryStore) Current() (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil, nil
	}
	copied := *s.session
	return &copied, nil
}

// Save records the session.
func (s *MemoryStore) Save(session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &session
	return nil
}

// Clear removes the stored session.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return nil
}

// FileStore persists the session marker as a small JSON file, the CLI's
// stand-in for browser local storage. Concurrent processes sharing the
// file observe the same value with no synchronization beyond the
// filesystem's own atomicity.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by the file at path. The file and
// its parent directory are created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Current returns the stored session, or nil when the file is absent.
func (s *FileStore) Current() (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session file: %w", err)
	}
	return &session, nil
}

// Save writes the session to disk, creating the parent directory as
// needed.
func (s *FileStore) Save(session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Clear deletes the session file. A missing file is not an error.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
