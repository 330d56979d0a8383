package cache

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insights-server/internal/config"
	"insights-server/internal/observability"
)

type payload struct {
	Spend float64 `json:"spend"`
	Leads int     `json:"leads"`
}

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	port, err := strconv.Atoi(server.Port())
	require.NoError(t, err)
	c := New(config.RedisConfig{
		Enabled:    true,
		Host:       server.Host(),
		Port:       port,
		TTLSeconds: 30,
	}, observability.NewLogger())
	require.NotNil(t, c)
	t.Cleanup(func() { _ = c.Close() })
	return c, server
}

func TestCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, "metrics:totals:org:2026-01-01:2026-01-07:all:all", payload{Spend: 300, Leads: 5})

	var got payload
	assert.True(t, c.Get(ctx, "metrics:totals:org:2026-01-01:2026-01-07:all:all", &got))
	assert.Equal(t, payload{Spend: 300, Leads: 5}, got)
}

func TestCacheMiss(t *testing.T) {
	c, _ := newTestCache(t)

	var got payload
	assert.False(t, c.Get(context.Background(), "metrics:totals:missing", &got))
}

func TestCacheEntryExpires(t *testing.T) {
	c, server := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, "metrics:totals:short-lived", payload{Spend: 1})
	server.FastForward(31 * time.Second)

	var got payload
	assert.False(t, c.Get(ctx, "metrics:totals:short-lived", &got))
}

func TestCacheCorruptEntryIsAMiss(t *testing.T) {
	c, server := newTestCache(t)

	require.NoError(t, server.Set("metrics:totals:corrupt", "{not json"))

	var got payload
	assert.False(t, c.Get(context.Background(), "metrics:totals:corrupt", &got))
}

func TestNilCacheIsSafe(t *testing.T) {
	var c *Cache

	c.Set(context.Background(), "key", payload{})
	var got payload
	assert.False(t, c.Get(context.Background(), "key", &got))
	assert.NoError(t, c.Close())
}
