package redis

import (
	"context"
	"strconv"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis serves the two commands the counter issues.
type fakeRedis struct {
	redis.Cmdable
	data map[string]int64
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(strconv.FormatInt(v, 10), nil)
}

func (f *fakeRedis) Incr(_ context.Context, key string) *redis.IntCmd {
	f.data[key]++
	return redis.NewIntResult(f.data[key], nil)
}

func TestViewCounter(t *testing.T) {
	rdb := &fakeRedis{data: map[string]int64{"adx:ads_viewed:known": 29}}
	c := NewViewCounter(rdb, "adx:")
	ctx := context.Background()

	n, err := c.Load(ctx, "missing")
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = c.Load(ctx, "known")
	require.NoError(t, err)
	assert.Equal(t, int64(29), n)

	n, err = c.Increment(ctx, "known")
	require.NoError(t, err)
	assert.Equal(t, int64(30), n)
	assert.Equal(t, int64(30), rdb.data["adx:ads_viewed:known"])
}
