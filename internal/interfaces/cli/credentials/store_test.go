package credentials

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "arena-admin", "credentials.yaml"))
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := newTestStore(t)
	creds := &Credentials{
		BaseURL:     "https://judge.example.com/api",
		AccessToken: "tok",
		StaffID:     "u-1",
		Username:    "mod",
		Role:        "moderator",
		ExpiresAt:   time.Now().Add(time.Hour).UTC().Truncate(time.Second),
	}

	require.NoError(t, store.Save(creds))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, creds, got)
}

func TestStore_LoadMissing(t *testing.T) {
	_, err := newTestStore(t).Load()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestStore_LoadExpired(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(&Credentials{AccessToken: "tok", ExpiresAt: time.Now().Add(-time.Minute)}))

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestStore_Remove(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(&Credentials{AccessToken: "tok"}))

	require.NoError(t, store.Remove())
	require.NoError(t, store.Remove())

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}
