package store

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"marketplace/internal/domain"
)

const sessionFilename = "session.enc"

// SessionFileStore persists the session token encrypted on disk.
type SessionFileStore struct {
	dir  string
	keys *Keyring
	mu   sync.Mutex
}

// NewSessionFileStore returns a SessionFileStore rooted at dir.
func NewSessionFileStore(dir string, keys *Keyring) *SessionFileStore {
	return &SessionFileStore{dir: dir, keys: keys}
}

// SaveToken encrypts and writes the token.
func (s *SessionFileStore) SaveToken(token domain.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	secret, err := s.keys.Secret()
	if err != nil {
		return err
	}
	ct, err := seal(secret, []byte(token), defaultKDF())
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, sessionFilename), ct, 0o600)
}

// LoadToken reads and decrypts the token, reporting whether one was stored.
func (s *SessionFileStore) LoadToken() (domain.Token, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(filepath.Join(s.dir, sessionFilename))
	if err != nil {
		return "", false, err
	}
	if b == nil {
		return "", false, nil
	}
	secret, err := s.keys.Secret()
	if err != nil {
		return "", false, err
	}
	pt, err := open(secret, b)
	if err != nil {
		return "", false, err
	}
	return domain.Token(pt), true, nil
}

// ClearToken deletes the stored token. A missing token is not an error.
func (s *SessionFileStore) ClearToken() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(filepath.Join(s.dir, sessionFilename))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Compile-time assertion that SessionFileStore implements domain.SessionStore.
var _ domain.SessionStore = (*SessionFileStore)(nil)
