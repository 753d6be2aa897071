package memory

import (
	"context"
	"testing"

	"postboard/internal/repository/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheStoreRoundTrip(t *testing.T) {
	store := NewCacheStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "k", []byte(`[{"id":1}]`)))

	data, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(data))
}

func TestCacheStoreOverwrites(t *testing.T) {
	store := NewCacheStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "k", []byte("old")))
	require.NoError(t, store.Put(ctx, "k", []byte("new")))

	data, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestCacheStoreMissingKey(t *testing.T) {
	store := NewCacheStore()

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, contract.ErrKeyNotFound)
}

func TestCacheStoreCopiesValue(t *testing.T) {
	store := NewCacheStore()
	ctx := context.Background()

	buf := []byte("abc")
	require.NoError(t, store.Put(ctx, "k", buf))
	buf[0] = 'z'

	data, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(data))
}
