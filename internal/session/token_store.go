package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

// ErrNoSession is returned by a TokenStore when nothing has been saved yet.
var ErrNoSession = errors.New("no stored session")

// Session is the persisted authentication state. The role is mirrored from
// the token claims so pages can gate controls without re-parsing the JWT.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Username     string `json:"username,omitempty"`
	Role         string `json:"role,omitempty"`
}

// TokenStore abstracts session persistence so the manager can be tested
// without touching the filesystem.
type TokenStore interface {
	Load() (*Session, error)
	Save(*Session) error
	Clear() error
}

// FileTokenStore persists the session as a JSON file, readable only by the
// owning user.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore creates a store writing to the given path.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

func (s *FileTokenStore) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to decode session file: %w", err)
	}
	if sess.AccessToken == "" {
		return nil, ErrNoSession
	}
	return &sess, nil
}

func (s *FileTokenStore) Save(sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

func (s *FileTokenStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// MemoryTokenStore keeps the session in memory only. Used in tests and for
// callers that opt out of persistence.
type MemoryTokenStore struct {
	mu   sync.Mutex
	sess *Session
}

// NewMemoryTokenStore creates an empty in-memory store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Load() (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess == nil {
		return nil, ErrNoSession
	}
	copied := *s.sess
	return &copied, nil
}

func (s *MemoryTokenStore) Save(sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *sess
	s.sess = &copied
	return nil
}

func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = nil
	return nil
}
