package client

import (
	"context"
	"errors"

	"github.com/kg-3rd/grand-adventure-hub/internal/mediaorder"
	"github.com/kg-3rd/grand-adventure-hub/internal/models"
)

type ViewState string

const (
	StateLoading ViewState = "loading"
	StateReady   ViewState = "ready"
	StateDirty   ViewState = "dirty"
	StateSaving  ViewState = "saving"
)

// BucketView is the per-bucket admin view: an in-memory ordered list of
// media reconciled against the server after every mutation. Methods are not
// goroutine safe; the view belongs to a single interactive session, which
// issues one mutating operation at a time.
type BucketView struct {
	client *Client
	bucket string
	state  ViewState
	items  []models.MediaObject
}

func NewBucketView(client *Client, bucket string) *BucketView {
	return &BucketView{
		client: client,
		bucket: bucket,
		state:  StateLoading,
	}
}

func (v *BucketView) State() ViewState { return v.state }

func (v *BucketView) Dirty() bool { return v.state == StateDirty }

func (v *BucketView) Items() []models.MediaObject {
	out := make([]models.MediaObject, len(v.items))
	copy(out, v.items)
	return out
}

// Refresh reloads the listing and applies the saved order, discarding any
// unsaved local reordering.
func (v *BucketView) Refresh(ctx context.Context) error {
	v.state = StateLoading

	listing, err := v.client.ListMedia(ctx, v.bucket)
	if err != nil {
		return err
	}

	v.items = mediaorder.Sort(listing.Items, listing.Order)
	v.state = StateReady
	return nil
}

// Move relocates the named entry by delta positions, clamped to the list
// bounds. Returns false when nothing changed. A successful move marks the
// order dirty until saved.
func (v *BucketView) Move(name string, delta int) bool {
	idx := -1
	for i, item := range v.items {
		if item.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	target := idx + delta
	if target < 0 {
		target = 0
	}
	if target > len(v.items)-1 {
		target = len(v.items) - 1
	}
	if target == idx {
		return false
	}

	item := v.items[idx]
	v.items = append(v.items[:idx], v.items[idx+1:]...)
	v.items = append(v.items[:target], append([]models.MediaObject{item}, v.items[target:]...)...)
	v.state = StateDirty
	return true
}

// SaveOrder pushes the current sequence to the server. Only valid while
// dirty; on success the view is clean again.
func (v *BucketView) SaveOrder(ctx context.Context) error {
	if v.state != StateDirty {
		return errors.New("order not modified")
	}

	order := make([]string, 0, len(v.items))
	for _, item := range v.items {
		order = append(order, item.Name)
	}

	v.state = StateSaving
	if err := v.client.SaveOrder(ctx, v.bucket, order); err != nil {
		v.state = StateDirty
		return err
	}
	v.state = StateReady
	return nil
}

// Delete removes one object and refetches the listing.
func (v *BucketView) Delete(ctx context.Context, name string) error {
	if err := v.client.Delete(ctx, v.bucket, name); err != nil {
		return err
	}
	return v.Refresh(ctx)
}
