// Package credentials persists the MEFrp login token between CLI runs.
package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// ErrNoPath is returned when a Store is created without a file path.
var ErrNoPath = errors.New("credentials path is required")

// Credentials is what a Store keeps on disk.
type Credentials struct {
	Token    string    `json:"token"`
	Username string    `json:"username,omitempty"`
	SavedAt  time.Time `json:"saved_at"`
}

// Store reads and writes a credentials file. Access is serialized across
// processes with a lock file next to it.
type Store struct {
	path string
	lock *flock.Flock
}

// NewStore creates a Store for path.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, ErrNoPath
	}
	return &Store{
		path: path,
		lock: flock.New(path + ".lock"),
	}, nil
}

// DefaultPath returns the per-user credentials location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".mefrp", "credentials.json")
	}
	return filepath.Join(dir, "mefrp", "credentials.json")
}

// Path returns the credentials file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the saved credentials. A missing file yields empty credentials
// and no error.
func (s *Store) Load() (Credentials, error) {
	if err := s.ensureDir(); err != nil {
		return Credentials{}, err
	}
	if err := s.lock.RLock(); err != nil {
		return Credentials{}, fmt.Errorf("acquire read lock: %w", err)
	}
	defer s.lock.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Credentials{}, nil
	}
	if err != nil {
		return Credentials{}, fmt.Errorf("read credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{}, fmt.Errorf("parse credentials %s: %w", s.path, err)
	}
	return creds, nil
}

// Save replaces the stored credentials. The file is written with 0600
// permissions and swapped into place atomically.
func (s *Store) Save(creds Credentials) error {
	if creds.SavedAt.IsZero() {
		creds.SavedAt = time.Now().UTC()
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	if err := s.ensureDir(); err != nil {
		return err
	}
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("acquire write lock: %w", err)
	}
	defer s.lock.Unlock()

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".credentials-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace credentials: %w", err)
	}
	return nil
}

// Clear removes the stored credentials. Clearing an empty store is not an error.
func (s *Store) Clear() error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("acquire write lock: %w", err)
	}
	defer s.lock.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}

func (s *Store) ensureDir() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}
	return nil
}
