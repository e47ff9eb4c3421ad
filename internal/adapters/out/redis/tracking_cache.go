// Package redis caches rendered tracking views.
//
// Only views of orders that no agent is currently carrying are cached, because those
// do not change until the next status change. The cache also implements
// ports.EventPublisher and drops the view of every order whose status changed.
package redis

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "tracking:"

// TrackingCache stores tracking views as opaque payloads keyed by order id.
type TrackingCache struct {
	c   *redis.Client
	ttl time.Duration
}

// NewTrackingCache connects to the Redis server at addr. Entries expire after ttl.
func NewTrackingCache(addr string, ttl time.Duration) *TrackingCache {
	return &TrackingCache{
		c: redis.NewClient(&redis.Options{
			Addr: addr,
		}),
		ttl: ttl,
	}
}

// Get returns the cached payload and whether it was present.
func (r *TrackingCache) Get(ctx context.Context, orderID kernel.UUID) ([]byte, bool, error) {
	val, err := r.c.Get(ctx, key(orderID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "redis get")
	}
	return val, true, nil
}

// Set stores payload for orderID.
func (r *TrackingCache) Set(ctx context.Context, orderID kernel.UUID, payload []byte) error {
	if err := r.c.Set(ctx, key(orderID), payload, r.ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set")
	}
	return nil
}

// Publish invalidates the views of the orders the events refer to.
func (r *TrackingCache) Publish(ctx context.Context, events []order.StatusChanged) error {
	if len(events) == 0 {
		return nil
	}

	keys := make([]string, 0, len(events))
	seen := make(map[string]struct{}, len(events))
	for _, e := range events {
		k := key(e.OrderID)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	if err := r.c.Del(ctx, keys...).Err(); err != nil {
		return errors.Wrap(err, "redis del")
	}
	return nil
}

// Ping checks if Redis is reachable.
func (r *TrackingCache) Ping(ctx context.Context) error {
	if err := r.c.Ping(ctx).Err(); err != nil {
		return errors.Wrap(err, "redis ping")
	}
	return nil
}

// Close closes the Redis connection.
func (r *TrackingCache) Close() error {
	return r.c.Close()
}

func key(orderID kernel.UUID) string {
	return keyPrefix + orderID.String()
}
