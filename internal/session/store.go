// Package session persists the authentication token between runs of the
// client. The store holds exactly one entry, written by the HTTP adapter
// and nobody else; writes are last-writer-wins, which is acceptable because
// only one session exists per machine profile.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// ErrNotFound is returned by Session when no session has been saved yet.
var ErrNotFound = errors.New("saved session not found")

// persistedSession is the on-disk layout of the session file.
type persistedSession struct {
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}

// FileStore keeps the token in a small JSON file. It implements the
// adapter's TokenStore interface.
type FileStore struct {
	path string

	mu sync.Mutex
}

// NewFileStore opens (or prepares) a token store at path, creating parent
// directories as needed. The file itself is created lazily on first Save.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("empty session file path")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create session dir: %w", err)
		}
	}

	return &FileStore{path: path}, nil
}

// Load returns the persisted token, or "" when no session file exists.
func (s *FileStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.read()
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return sess.Token, nil
}

// Session returns the full persisted record, including the save timestamp.
// Returns [ErrNotFound] when nothing has been saved.
func (s *FileStore) Session() (string, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.read()
	if err != nil {
		return "", time.Time{}, err
	}
	return sess.Token, sess.SavedAt, nil
}

// Save replaces the persisted token. The file is written with owner-only
// permissions via a temp file plus rename so a crash cannot leave a
// half-written session behind.
func (s *FileStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(persistedSession{Token: token, SavedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err = os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

// Clear deletes the persisted session. Clearing an absent session is a
// no-op.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

func (s *FileStore) read() (persistedSession, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return persistedSession{}, ErrNotFound
		}
		return persistedSession{}, fmt.Errorf("read session file: %w", err)
	}

	var sess persistedSession
	if err = json.Unmarshal(data, &sess); err != nil {
		return persistedSession{}, fmt.Errorf("decode session file: %w", err)
	}
	return sess, nil
}
