package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// MemStore keeps buckets in process memory. It backs the "memory" driver for
// local development and is the store used by tests.
type MemStore struct {
	mu      sync.RWMutex
	buckets map[string]map[string][]byte
	baseURL string
}

func NewMemStore(baseURL string) *MemStore {
	if baseURL == "" {
		baseURL = "https://storage.local"
	}
	return &MemStore{
		buckets: make(map[string]map[string][]byte),
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (s *MemStore) EnsureBuckets(_ context.Context, buckets []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, bucket := range buckets {
		if _, ok := s.buckets[bucket]; !ok {
			s.buckets[bucket] = make(map[string][]byte)
		}
	}
	return nil
}

func (s *MemStore) List(_ context.Context, bucket string) ([]Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	objects := make([]Object, 0, len(s.buckets[bucket]))
	for name, data := range s.buckets[bucket] {
		objects = append(objects, Object{Name: name, Size: int64(len(data))})
	}
	sort.Slice(objects, func(i, j int) bool { return objects[i].Name < objects[j].Name })
	return objects, nil
}

func (s *MemStore) Download(_ context.Context, bucket, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.buckets[bucket][name]
	if !ok {
		return nil, ErrObjectNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *MemStore) Upload(_ context.Context, bucket, name string, data []byte, opts PutOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	objects, ok := s.buckets[bucket]
	if !ok {
		objects = make(map[string][]byte)
		s.buckets[bucket] = objects
	}
	if _, exists := objects[name]; exists && !opts.Overwrite {
		return ErrObjectExists
	}

	stored := make([]byte, len(data))
	copy(stored, data)
	objects[name] = stored
	return nil
}

func (s *MemStore) Remove(_ context.Context, bucket, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Removing an absent name is a no-op, matching the hosted store.
	delete(s.buckets[bucket], name)
	return nil
}

func (s *MemStore) PublicURL(bucket, name string) string {
	return fmt.Sprintf("%s/%s/%s", s.baseURL, bucket, name)
}
