package service

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kg-3rd/grand-adventure-hub/internal/mediaorder"
	"github.com/kg-3rd/grand-adventure-hub/internal/storage"
)

func newMediaService(t *testing.T) (*MediaService, *storage.MemStore) {
	t.Helper()
	store := storage.NewMemStore("")
	svc := NewMediaService(store, nil, zerolog.Nop())
	return svc, store
}

func seed(t *testing.T, store *storage.MemStore, bucket string, names ...string) {
	t.Helper()
	ctx := context.Background()
	for _, name := range names {
		require.NoError(t, store.Upload(ctx, bucket, name, []byte("data"), storage.PutOptions{}))
	}
}

func itemNames(listing Listing) []string {
	out := make([]string, 0, len(listing.Items))
	for _, it := range listing.Items {
		out = append(out, it.Name)
	}
	return out
}

func TestList_NoOrderDocument(t *testing.T) {
	svc, store := newMediaService(t)
	seed(t, store, "gallery", "x.jpg", "y.jpg", "z.jpg")

	listing, err := svc.List(context.Background(), "gallery")
	require.NoError(t, err)
	assert.Equal(t, []string{"x.jpg", "y.jpg", "z.jpg"}, itemNames(listing))
	assert.Nil(t, listing.Order)
}

func TestList_ExcludesSidecarAndUnrecognizedNames(t *testing.T) {
	svc, store := newMediaService(t)
	ctx := context.Background()
	seed(t, store, "gallery", "a.jpg", "clip.mp4")
	require.NoError(t, store.Upload(ctx, "gallery", "order.json", []byte(`{"order":[]}`), storage.PutOptions{Overwrite: true}))
	require.NoError(t, store.Upload(ctx, "gallery", "notes.txt", []byte("x"), storage.PutOptions{}))

	listing, err := svc.List(ctx, "gallery")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jpg", "clip.mp4"}, itemNames(listing))
}

func TestList_MalformedOrderDocumentIgnored(t *testing.T) {
	svc, store := newMediaService(t)
	ctx := context.Background()
	seed(t, store, "gallery", "a.jpg")
	require.NoError(t, store.Upload(ctx, "gallery", "order.json", []byte("not json"), storage.PutOptions{Overwrite: true}))

	listing, err := svc.List(ctx, "gallery")
	require.NoError(t, err)
	assert.Nil(t, listing.Order)
	assert.Equal(t, []string{"a.jpg"}, itemNames(listing))
}

func TestListOrdered_AppliesSidecar(t *testing.T) {
	svc, store := newMediaService(t)
	ctx := context.Background()
	seed(t, store, "gallery", "x.jpg", "y.jpg", "z.jpg")
	require.NoError(t, store.Upload(ctx, "gallery", "order.json",
		mediaorder.Encode([]string{"z.jpg", "x.jpg"}), storage.PutOptions{Overwrite: true}))

	listing, err := svc.ListOrdered(ctx, "gallery")
	require.NoError(t, err)
	assert.Equal(t, []string{"z.jpg", "x.jpg", "y.jpg"}, itemNames(listing))
}

func TestSaveOrder_RoundTrip(t *testing.T) {
	svc, store := newMediaService(t)
	ctx := context.Background()
	seed(t, store, "events-posters", "a.png", "b.png")

	_, err := svc.SaveOrder(ctx, "events-posters", []string{"b.png", "a.png"})
	require.NoError(t, err)

	listing, err := svc.ListOrdered(ctx, "events-posters")
	require.NoError(t, err)
	assert.Equal(t, []string{"b.png", "a.png"}, itemNames(listing))
}

func TestSaveOrder_ReplacesWholesale(t *testing.T) {
	svc, _ := newMediaService(t)
	ctx := context.Background()

	_, err := svc.SaveOrder(ctx, "gallery", []string{"a", "b", "c"})
	require.NoError(t, err)
	_, err = svc.SaveOrder(ctx, "gallery", []string{"c"})
	require.NoError(t, err)

	listing, err := svc.List(ctx, "gallery")
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, listing.Order)
}

func TestUpload_TimestampPrefixAndURL(t *testing.T) {
	svc, _ := newMediaService(t)
	ctx := context.Background()

	payload := base64.StdEncoding.EncodeToString([]byte("GIF89a tiny"))
	result, err := svc.Upload(ctx, UploadInput{
		Bucket:   "gallery",
		FileName: "trip.gif",
		FileData: payload,
	})
	require.NoError(t, err)
	assert.Regexp(t, `^\d+-trip\.gif$`, result.Path)
	assert.Contains(t, result.PublicURL, result.Path)

	listing, err := svc.List(ctx, "gallery")
	require.NoError(t, err)
	require.Len(t, listing.Items, 1)
	assert.Equal(t, result.Path, listing.Items[0].Name)
}

func TestUpload_AcceptsDataURLPayload(t *testing.T) {
	svc, _ := newMediaService(t)

	payload := "data:image/gif;base64," + base64.StdEncoding.EncodeToString([]byte("GIF89a tiny"))
	_, err := svc.Upload(context.Background(), UploadInput{
		Bucket:   "gallery",
		FileName: "trip.gif",
		FileData: payload,
	})
	assert.NoError(t, err)
}

func TestUpload_EmptyPayloadRejected(t *testing.T) {
	svc, _ := newMediaService(t)

	_, err := svc.Upload(context.Background(), UploadInput{
		Bucket:   "gallery",
		FileName: "trip.gif",
		FileData: "",
	})
	assert.Error(t, err)
}

func TestUpload_CollisionFails(t *testing.T) {
	svc, store := newMediaService(t)
	ctx := context.Background()

	result, err := svc.Upload(ctx, UploadInput{
		Bucket:   "gallery",
		FileName: "trip.gif",
		FileData: base64.StdEncoding.EncodeToString([]byte("GIF89a tiny")),
	})
	require.NoError(t, err)

	// Same final object name: the store must refuse the overwrite.
	err = store.Upload(ctx, "gallery", result.Path, []byte("other"), storage.PutOptions{})
	assert.ErrorIs(t, err, storage.ErrObjectExists)
}

func TestUpload_SanitizesSVG(t *testing.T) {
	svc, store := newMediaService(t)
	ctx := context.Background()

	dirty := `<svg onload="evil()"><script >alert(1)</script><rect/></svg>`
	result, err := svc.Upload(ctx, UploadInput{
		Bucket:   "gallery",
		FileName: "logo.svg",
		FileData: base64.StdEncoding.EncodeToString([]byte(dirty)),
	})
	require.NoError(t, err)

	stored, err := store.Download(ctx, "gallery", result.Path)
	require.NoError(t, err)
	assert.NotContains(t, string(stored), "<script")
	assert.NotContains(t, string(stored), "onload")
}

func TestDelete_AbsentNameIsNoOp(t *testing.T) {
	svc, _ := newMediaService(t)
	assert.NoError(t, svc.Delete(context.Background(), "gallery", "missing.jpg"))
}

func TestPruneOrder_DropsDanglingEntries(t *testing.T) {
	svc, store := newMediaService(t)
	ctx := context.Background()
	seed(t, store, "gallery", "a.jpg", "b.jpg")

	_, err := svc.SaveOrder(ctx, "gallery", []string{"gone.jpg", "b.jpg", "a.jpg"})
	require.NoError(t, err)

	removed, err := svc.PruneOrder(ctx, "gallery")
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	listing, err := svc.List(ctx, "gallery")
	require.NoError(t, err)
	assert.Equal(t, []string{"b.jpg", "a.jpg"}, listing.Order)

	// Second pass finds nothing to do.
	removed, err = svc.PruneOrder(ctx, "gallery")
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestPruneOrder_NoSidecar(t *testing.T) {
	svc, _ := newMediaService(t)
	removed, err := svc.PruneOrder(context.Background(), "gallery")
	require.NoError(t, err)
	assert.Zero(t, removed)
}
