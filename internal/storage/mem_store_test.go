package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStore_UploadDisallowsOverwriteByDefault(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore("")

	require.NoError(t, store.Upload(ctx, "gallery", "a.jpg", []byte("one"), PutOptions{}))

	err := store.Upload(ctx, "gallery", "a.jpg", []byte("two"), PutOptions{})
	assert.ErrorIs(t, err, ErrObjectExists)

	data, err := store.Download(ctx, "gallery", "a.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), data)
}

func TestMemStore_UpsertReplaces(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore("")

	require.NoError(t, store.Upload(ctx, "gallery", "order.json", []byte("v1"), PutOptions{Overwrite: true}))
	require.NoError(t, store.Upload(ctx, "gallery", "order.json", []byte("v2"), PutOptions{Overwrite: true}))

	data, err := store.Download(ctx, "gallery", "order.json")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), data)
}

func TestMemStore_ListIsLexicographic(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore("")

	for _, name := range []string{"z.jpg", "x.jpg", "y.jpg"} {
		require.NoError(t, store.Upload(ctx, "gallery", name, []byte("d"), PutOptions{}))
	}

	objects, err := store.List(ctx, "gallery")
	require.NoError(t, err)
	require.Len(t, objects, 3)
	assert.Equal(t, "x.jpg", objects[0].Name)
	assert.Equal(t, "y.jpg", objects[1].Name)
	assert.Equal(t, "z.jpg", objects[2].Name)
}

func TestMemStore_RemoveAbsentIsNoOp(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore("")

	assert.NoError(t, store.Remove(ctx, "gallery", "missing.jpg"))
}

func TestMemStore_DownloadMissing(t *testing.T) {
	store := NewMemStore("")
	_, err := store.Download(context.Background(), "gallery", "missing.jpg")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestMemStore_PublicURL(t *testing.T) {
	store := NewMemStore("https://cdn.example.com/")
	assert.Equal(t, "https://cdn.example.com/gallery/a.jpg", store.PublicURL("gallery", "a.jpg"))
}
