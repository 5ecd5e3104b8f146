package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDocumentStore(t *testing.T) *DocumentStore {
	t.Helper()
	store, err := NewDocumentStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestDocumentStore_GetAbsentKey(t *testing.T) {
	store := newDocumentStore(t)

	value, ok, err := store.Get(context.Background(), "missing")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, value)
}

func TestDocumentStore_SetGetRoundtrip(t *testing.T) {
	store := newDocumentStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "companies_v2", []byte(`[{"name":"한빛유통"}]`)))

	value, ok, err := store.Get(ctx, "companies_v2")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[{"name":"한빛유통"}]`), value)
}

func TestDocumentStore_SetReplacesValue(t *testing.T) {
	store := newDocumentStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "key", []byte("first")))
	require.NoError(t, store.Set(ctx, "key", []byte("second")))

	value, ok, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("second"), value)
}

func TestDocumentStore_Remove(t *testing.T) {
	store := newDocumentStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "key", []byte("value")))
	require.NoError(t, store.Remove(ctx, "key"))

	_, ok, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing an absent key is a no-op
	require.NoError(t, store.Remove(ctx, "key"))
}

func TestDocumentStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store, err := NewDocumentStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "key", []byte("value")))
	require.NoError(t, store.Close())

	reopened, err := NewDocumentStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get(ctx, "key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("value"), value)
}
