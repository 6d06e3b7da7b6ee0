package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// OrderChannel carries order-change notifications. Subscribers refetch the
// affected bucket on receipt; delivery is best effort.
const OrderChannel = "media:order-updated"

type OrderChanged struct {
	Bucket  string `json:"bucket"`
	Version int64  `json:"version"`
}

// OrderVersions tracks a monotonic version per bucket, bumped on every order
// save. Public listing responses carry the version so CDN-cached copies of
// order.json can be busted. A nil client degrades to version 0 and no
// notifications; the ordering contract itself never depends on Redis.
type OrderVersions struct {
	client *redis.Client
}

func NewOrderVersions(client *redis.Client) *OrderVersions {
	return &OrderVersions{client: client}
}

func versionKey(bucket string) string {
	return "media:order-version:" + bucket
}

func (v *OrderVersions) Bump(ctx context.Context, bucket string) (int64, error) {
	if v == nil || v.client == nil {
		return 0, nil
	}

	version, err := v.client.Incr(ctx, versionKey(bucket)).Result()
	if err != nil {
		return 0, fmt.Errorf("bump order version: %w", err)
	}

	payload, _ := json.Marshal(OrderChanged{Bucket: bucket, Version: version})
	if err := v.client.Publish(ctx, OrderChannel, payload).Err(); err != nil {
		return version, fmt.Errorf("publish order change: %w", err)
	}
	return version, nil
}

func (v *OrderVersions) Current(ctx context.Context, bucket string) (int64, error) {
	if v == nil || v.client == nil {
		return 0, nil
	}

	version, err := v.client.Get(ctx, versionKey(bucket)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("get order version: %w", err)
	}
	return version, nil
}

// Subscribe returns a pub/sub handle on the order channel, or nil when
// Redis is not configured.
func (v *OrderVersions) Subscribe(ctx context.Context) *redis.PubSub {
	if v == nil || v.client == nil {
		return nil
	}
	return v.client.Subscribe(ctx, OrderChannel)
}
