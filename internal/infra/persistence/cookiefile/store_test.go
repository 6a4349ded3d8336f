package cookiefile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_MissingFileStartsEmpty(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "cookies.json"))
	require.NoError(t, err)

	_, ok := store.Get("0x1111111111111111111111111111111111111111")
	assert.False(t, ok)
}

func TestStore_MalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, err := New(path)
	require.Error(t, err)
}

func TestStore_PutReloadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.json")
	ctx := context.Background()

	store, err := New(path)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "0xAbCd000000000000000000000000000000000001", "session=abc"))

	// A fresh load sees the persisted cookie; lookups are case-insensitive
	// over the address.
	reloaded, err := New(path)
	require.NoError(t, err)

	cookie, ok := reloaded.Get("0xabcd000000000000000000000000000000000001")
	require.True(t, ok)
	assert.Equal(t, "session=abc", cookie)

	cookie, ok = reloaded.Get("0xABCD000000000000000000000000000000000001")
	require.True(t, ok)
	assert.Equal(t, "session=abc", cookie)
}

func TestStore_PutOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.json")
	ctx := context.Background()

	store, err := New(path)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "0x01", "session=old"))
	require.NoError(t, store.Put(ctx, "0x01", "session=new"))

	cookie, ok := store.Get("0x01")
	require.True(t, ok)
	assert.Equal(t, "session=new", cookie)
}

func TestStore_PutToUnwritablePathFails(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "missing-dir", "cookies.json"))
	require.NoError(t, err)

	require.Error(t, store.Put(context.Background(), "0x01", "session=abc"))
}
