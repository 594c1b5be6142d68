package facematch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := OpenCache(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCache_PutGetRoundTrip(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()
	id := uuid.New()
	d := Descriptor{0.1, 0.2, 0.3, 0.4}

	require.NoError(t, c.Put(ctx, id, "hash-a", d))

	got, ok, err := c.Get(ctx, id, "hash-a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, d, got)
}

func TestCache_StalePhotoHashIsAMiss(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, c.Put(ctx, id, "hash-a", Descriptor{1}))

	_, ok, err := c.Get(ctx, id, "hash-b")
	require.NoError(t, err)
	assert.False(t, ok)

	// A new photo's descriptor replaces the old entry.
	require.NoError(t, c.Put(ctx, id, "hash-b", Descriptor{2}))
	got, ok, err := c.Get(ctx, id, "hash-b")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Descriptor{2}, got)
}

func TestCache_UnknownVisitorIsAMiss(t *testing.T) {
	c := openTestCache(t)

	_, ok, err := c.Get(context.Background(), uuid.New(), "hash-a")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_Invalidate(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, c.Put(ctx, id, "hash-a", Descriptor{1}))
	require.NoError(t, c.Invalidate(ctx, id))

	_, ok, err := c.Get(ctx, id, "hash-a")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_RejectsEmptyDescriptor(t *testing.T) {
	c := openTestCache(t)
	assert.Error(t, c.Put(context.Background(), uuid.New(), "hash-a", nil))
}

func TestHashFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.jpg")
	require.NoError(t, os.WriteFile(path, []byte("image bytes"), 0600))

	h1, err := HashFile(path)
	require.NoError(t, err)
	assert.Len(t, h1, 64)

	require.NoError(t, os.WriteFile(path, []byte("other bytes"), 0600))
	h2, err := HashFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)

	_, err = HashFile(filepath.Join(t.TempDir(), "missing.jpg"))
	assert.Error(t, err)
}
