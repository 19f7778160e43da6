package credentials

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreRequiresPath(t *testing.T) {
	_, err := NewStore("")
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestLoadMissingFile(t *testing.T) {
	s, err := NewStore(filepath.Join(t.TempDir(), "nested", "credentials.json"))
	require.NoError(t, err)

	creds, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, creds.Token)
}

func TestSaveLoadClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	s, err := NewStore(path)
	require.NoError(t, err)

	require.NoError(t, s.Save(Credentials{Token: "tok-1", Username: "alice"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	creds, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-1", creds.Token)
	assert.Equal(t, "alice", creds.Username)
	assert.False(t, creds.SavedAt.IsZero())

	require.NoError(t, s.Save(Credentials{Token: "tok-2"}))
	creds, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-2", creds.Token)
	assert.Empty(t, creds.Username)

	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())
	creds, err = s.Load()
	require.NoError(t, err)
	assert.Empty(t, creds.Token)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s, err := NewStore(path)
	require.NoError(t, err)

	_, err = s.Load()
	assert.Error(t, err)
}

func TestConcurrentSaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Separate stores behave like separate processes.
			s, err := NewStore(path)
			if assert.NoError(t, err) {
				assert.NoError(t, s.Save(Credentials{Token: "same"}))
			}
		}()
	}
	wg.Wait()

	s, err := NewStore(path)
	require.NoError(t, err)
	creds, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "same", creds.Token)
}
