package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/kg-3rd/grand-adventure-hub/internal/cache"
	"github.com/kg-3rd/grand-adventure-hub/internal/media/sniffer"
	"github.com/kg-3rd/grand-adventure-hub/internal/media/svg"
	"github.com/kg-3rd/grand-adventure-hub/internal/mediaorder"
	"github.com/kg-3rd/grand-adventure-hub/internal/models"
	"github.com/kg-3rd/grand-adventure-hub/internal/storage"
)

// MediaService implements the listing and mutation contract over a bucket:
// list-with-order, upload, save-order and delete. Operations are independent
// single-step store calls with no transactional coupling; a failed order save
// after a successful upload leaves the new object unlisted until retried.
type MediaService struct {
	store    storage.ObjectStore
	versions *cache.OrderVersions
	log      zerolog.Logger
}

func NewMediaService(store storage.ObjectStore, versions *cache.OrderVersions, log zerolog.Logger) *MediaService {
	return &MediaService{
		store:    store,
		versions: versions,
		log:      log,
	}
}

type Listing struct {
	Items   []models.MediaObject `json:"items"`
	Order   []string             `json:"order"`
	Version int64                `json:"version"`
}

// List returns the bucket's media in native (lexicographic) listing order
// together with the order array, or a nil order when the sidecar is missing
// or malformed. Re-sorting is the caller's job.
func (s *MediaService) List(ctx context.Context, bucket string) (Listing, error) {
	objects, err := s.store.List(ctx, bucket)
	if err != nil {
		return Listing{}, fmt.Errorf("list bucket: %w", err)
	}

	items := make([]models.MediaObject, 0, len(objects))
	for _, obj := range objects {
		if obj.Name == mediaorder.DocumentName || !models.IsMediaName(obj.Name) {
			continue
		}
		items = append(items, models.MediaObject{
			Name: obj.Name,
			URL:  s.store.PublicURL(bucket, obj.Name),
			Kind: models.KindOf(obj.Name),
		})
	}

	var order []string
	if data, err := s.store.Download(ctx, bucket, mediaorder.DocumentName); err == nil {
		order = mediaorder.Parse(data)
	} else if !errors.Is(err, storage.ErrObjectNotFound) {
		// A broken sidecar read falls back to natural order, same as a
		// malformed document.
		s.log.Warn().Err(err).Str("bucket", bucket).Msg("order document unreadable")
	}

	version, err := s.versions.Current(ctx, bucket)
	if err != nil {
		s.log.Warn().Err(err).Str("bucket", bucket).Msg("order version unavailable")
	}

	return Listing{Items: items, Order: order, Version: version}, nil
}

// ListOrdered is the public read: items are pre-sorted by the order array.
func (s *MediaService) ListOrdered(ctx context.Context, bucket string) (Listing, error) {
	listing, err := s.List(ctx, bucket)
	if err != nil {
		return Listing{}, err
	}
	listing.Items = mediaorder.Sort(listing.Items, listing.Order)
	return listing, nil
}

type UploadInput struct {
	Bucket      string
	FileName    string
	FileData    string // base64, optionally a data URL
	ContentType string
}

type UploadResult struct {
	Path      string `json:"path"`
	PublicURL string `json:"publicUrl"`
}

// Upload stores a new object under a timestamp-prefixed name. Overwrite is
// disabled, so a collision fails instead of clobbering.
func (s *MediaService) Upload(ctx context.Context, input UploadInput) (UploadResult, error) {
	raw := input.FileData
	if idx := strings.IndexByte(raw, ','); idx >= 0 {
		raw = raw[idx+1:]
	}
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return UploadResult{}, fmt.Errorf("decode file data: %w", err)
	}
	if len(data) == 0 {
		return UploadResult{}, errors.New("empty file")
	}

	contentType := input.ContentType
	if result, err := sniffer.DetectHead(head(data)); err == nil {
		if result.Type == sniffer.TypeSVG {
			clean, err := svg.Sanitize(data)
			if err != nil {
				return UploadResult{}, fmt.Errorf("sanitize svg: %w", err)
			}
			data = clean
		}
		if contentType == "" {
			contentType = result.MIME
		}
	}
	if contentType == "" {
		contentType = sniffer.ContentTypeFor(input.FileName)
	}

	path := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), input.FileName)

	if err := s.store.Upload(ctx, input.Bucket, path, data, storage.PutOptions{
		ContentType: contentType,
	}); err != nil {
		return UploadResult{}, err
	}

	s.log.Info().
		Str("bucket", input.Bucket).
		Str("path", path).
		Int("size", len(data)).
		Msg("media uploaded")

	return UploadResult{
		Path:      path,
		PublicURL: s.store.PublicURL(input.Bucket, path),
	}, nil
}

func head(data []byte) []byte {
	if len(data) > 512 {
		return data[:512]
	}
	return data
}

// SaveOrder replaces the order sidecar wholesale and bumps the bucket's
// version marker. No merge, no revision check: the admin surface is assumed
// single-writer at a time.
func (s *MediaService) SaveOrder(ctx context.Context, bucket string, order []string) (int64, error) {
	err := s.store.Upload(ctx, bucket, mediaorder.DocumentName, mediaorder.Encode(order), storage.PutOptions{
		ContentType: "application/json",
		Overwrite:   true,
	})
	if err != nil {
		return 0, fmt.Errorf("save order: %w", err)
	}

	version, err := s.versions.Bump(ctx, bucket)
	if err != nil {
		// Notification is best effort; the saved document is the truth.
		s.log.Warn().Err(err).Str("bucket", bucket).Msg("order change notify failed")
	}
	return version, nil
}

// Delete removes a single object. The underlying store treats removal of an
// absent name as a no-op, and so does this.
func (s *MediaService) Delete(ctx context.Context, bucket, name string) error {
	return s.store.Remove(ctx, bucket, name)
}

// PruneOrder drops order entries whose objects no longer exist. Run
// periodically; the renderer already ignores dangling names, this just keeps
// the sidecar from growing stale forever.
func (s *MediaService) PruneOrder(ctx context.Context, bucket string) (int, error) {
	data, err := s.store.Download(ctx, bucket, mediaorder.DocumentName)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("load order: %w", err)
	}

	order := mediaorder.Parse(data)
	if len(order) == 0 {
		return 0, nil
	}

	objects, err := s.store.List(ctx, bucket)
	if err != nil {
		return 0, fmt.Errorf("list bucket: %w", err)
	}
	existing := make(map[string]struct{}, len(objects))
	for _, obj := range objects {
		existing[obj.Name] = struct{}{}
	}

	pruned, changed := mediaorder.Prune(order, existing)
	if !changed {
		return 0, nil
	}

	if _, err := s.SaveOrder(ctx, bucket, pruned); err != nil {
		return 0, err
	}
	return len(order) - len(pruned), nil
}
