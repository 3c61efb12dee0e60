package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")

	s, err := Open(path)
	require.NoError(t, err)
	_, ok := s.Get(KeyNetwork)
	assert.False(t, ok)

	require.NoError(t, s.Set(KeyNetwork, "mainnet-beta"))
	require.NoError(t, s.Set(KeyThemeOverride, `{"colors":{"primary":"#000"}}`))

	reopened, err := Open(path)
	require.NoError(t, err)
	v, ok := reopened.Get(KeyNetwork)
	require.True(t, ok)
	assert.Equal(t, "mainnet-beta", v)
	v, ok = reopened.Get(KeyThemeOverride)
	require.True(t, ok)
	assert.Equal(t, `{"colors":{"primary":"#000"}}`, v)

	require.NoError(t, reopened.Delete(KeyThemeOverride))
	again, err := Open(path)
	require.NoError(t, err)
	_, ok = again.Get(KeyThemeOverride)
	assert.False(t, ok)
}

func TestFileStore_DeleteMissingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	s, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, s.Delete("nope"))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "deleting an absent key must not create the file")
}

func TestFileStore_FailedWriteKeepsPreviousValues(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "conf")
	s, err := Open(filepath.Join(dir, "prefs.toml"))
	require.NoError(t, err)
	require.NoError(t, s.Set(KeyTheme, "aurora"))

	// A regular file where the directory should be makes every write fail.
	require.NoError(t, os.RemoveAll(dir))
	require.NoError(t, os.WriteFile(dir, []byte("x"), 0o600))

	assert.Error(t, s.Set(KeyTheme, "solar"))
	v, ok := s.Get(KeyTheme)
	require.True(t, ok)
	assert.Equal(t, "aurora", v)

	assert.Error(t, s.Set(KeyNetwork, "testnet"))
	_, ok = s.Get(KeyNetwork)
	assert.False(t, ok)

	assert.Error(t, s.Delete(KeyTheme))
	v, ok = s.Get(KeyTheme)
	require.True(t, ok)
	assert.Equal(t, "aurora", v)
}

func TestOpen_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, os.WriteFile(path, []byte("this is = = not toml"), 0o600))

	_, err := Open(path)
	assert.Error(t, err)
}

func TestMemoryStore(t *testing.T) {
	var s Store = NewMemoryStore()
	require.NoError(t, s.Set(KeyTheme, "aurora"))
	v, ok := s.Get(KeyTheme)
	assert.True(t, ok)
	assert.Equal(t, "aurora", v)
	require.NoError(t, s.Delete(KeyTheme))
	_, ok = s.Get(KeyTheme)
	assert.False(t, ok)
}
