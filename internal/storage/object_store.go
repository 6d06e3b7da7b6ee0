package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/kg-3rd/grand-adventure-hub/internal/config"
)

var (
	ErrObjectExists   = errors.New("object already exists")
	ErrObjectNotFound = errors.New("object not found")
)

type Object struct {
	Name string
	Size int64
}

type PutOptions struct {
	ContentType string
	// Overwrite enables upsert. Media uploads leave this off so a name
	// collision fails instead of silently clobbering; the order sidecar
	// turns it on because saves replace the document wholesale.
	Overwrite bool
}

// ObjectStore is the capability the rest of the service consumes: list,
// download, upload, delete and public URL derivation over named buckets.
// List returns objects sorted lexicographically by name.
type ObjectStore interface {
	EnsureBuckets(ctx context.Context, buckets []string) error
	List(ctx context.Context, bucket string) ([]Object, error)
	Download(ctx context.Context, bucket, name string) ([]byte, error)
	Upload(ctx context.Context, bucket, name string, data []byte, opts PutOptions) error
	Remove(ctx context.Context, bucket, name string) error
	PublicURL(bucket, name string) string
}

// New selects a driver from config.
func New(cfg config.StorageConfig) (ObjectStore, error) {
	switch cfg.Driver {
	case "", "minio":
		return NewMinioStore(cfg)
	case "memory":
		return NewMemStore(cfg.PublicBaseURL), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
