package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diversion-social/diversion-go/domain"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	current, err := store.Current()
	require.NoError(t, err)
	assert.Nil(t, current, "fresh store is signed out")

	require.NoError(t, store.Save(domain.Session{Username: "casey"}))

	current, err = store.Current()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "casey", current.Username)

	// Current hands out a copy.
	current.Username = "mutated"
	again, err := store.Current()
	require.NoError(t, err)
	assert.Equal(t, "casey", again.Username)

	require.NoError(t, store.Clear())
	current, err = store.Current()
	require.NoError(t, err)
	assert.Nil(t, current)

	// Clearing an empty store is a no-op.
	assert.NoError(t, store.Clear())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewFileStore(path)

	current, err := store.Current()
	require.NoError(t, err)
	assert.Nil(t, current, "missing file means signed out")

	require.NoError(t, store.Save(domain.Session{Username: "casey"}))

	// A second store over the same path observes the value.
	other := NewFileStore(path)
	current, err = other.Current()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "casey", current.Username)

	require.NoError(t, store.Clear())
	current, err = store.Current()
	require.NoError(t, err)
	assert.Nil(t, current)

	// Clearing again with no file present is a no-op.
	assert.NoError(t, store.Clear())
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	store := NewFileStore(path)
	_, err := store.Current()
	assert.Error(t, err)
}

func TestFileStoreOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)

	require.NoError(t, store.Save(domain.Session{Username: "casey"}))
	require.NoError(t, store.Save(domain.Session{Username: "riley"}))

	current, err := store.Current()
	require.NoError(t, err)
	assert.Equal(t, "riley", current.Username)
}
