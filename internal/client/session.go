package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ksaito/giftapi/internal/auth"
)

// Session is the client-side persisted state. At most one session is
// active; login and register replace it, logout clears it entirely.
type Session struct {
	IsLoggedIn bool       `json:"isLoggedIn"`
	User       *auth.User `json:"user,omitempty"`
	Token      string     `json:"token,omitempty"`
	RememberMe bool       `json:"rememberMe,omitempty"`
}

// SessionStore persists the session across page navigations.
type SessionStore interface {
	Load() (Session, error)
	Save(Session) error
	Clear() error
}

// MemorySessionStore keeps the session in memory. Useful for tests and
// short-lived consumers.
type MemorySessionStore struct {
	mu      sync.Mutex
	session Session
}

// NewMemorySessionStore constructs an empty MemorySessionStore.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

// Load returns the current session.
func (s *MemorySessionStore) Load() (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session, nil
}

// Save replaces the current session.
func (s *MemorySessionStore) Save(session Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
	return nil
}

// Clear drops the current session.
func (s *MemorySessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = Session{}
	return nil
}

// FileSessionStore persists the session as a JSON file, surviving
// process restarts the way localStorage survives page loads.
type FileSessionStore struct {
	mu   sync.Mutex
	path string
}

// NewFileSessionStore constructs a FileSessionStore writing to path.
func NewFileSessionStore(path string) *FileSessionStore {
	return &FileSessionStore{path: path}
}

// Load reads the persisted session. A missing file is an empty session,
// not an error.
func (s *FileSessionStore) Load() (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, nil
		}
		return Session{}, fmt.Errorf("read session file: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return Session{}, fmt.Errorf("decode session file: %w", err)
	}

	return session, nil
}

// Save writes the session file, creating parent directories as needed.
func (s *FileSessionStore) Save(session Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}

// Clear removes the session file.
func (s *FileSessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}

	return nil
}
