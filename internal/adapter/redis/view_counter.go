package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// ViewCounter implements port.ViewCounter with one Redis integer per
// device.
type ViewCounter struct {
	rdb    redis.Cmdable
	prefix string
}

// NewViewCounter returns a counter storing keys under prefix.
func NewViewCounter(rdb redis.Cmdable, prefix string) *ViewCounter {
	return &ViewCounter{rdb: rdb, prefix: prefix}
}

func (c *ViewCounter) key(deviceID string) string {
	return c.prefix + "ads_viewed:" + deviceID
}

// Load returns the stored count or zero when the key is missing.
func (c *ViewCounter) Load(ctx context.Context, deviceID string) (int64, error) {
	n, err := c.rdb.Get(ctx, c.key(deviceID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}

// Increment atomically adds one to the device's count.
func (c *ViewCounter) Increment(ctx context.Context, deviceID string) (int64, error) {
	return c.rdb.Incr(ctx, c.key(deviceID)).Result()
}
