package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"insights-server/internal/config"
	"insights-server/internal/observability"
)

// Cache is a short-TTL JSON cache for aggregation results backed by Redis.
// It is purely an accelerator: every failure degrades to a miss and the
// caller recomputes from the store.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *observability.Logger
}

// New connects to Redis per the config. Returns nil when the cache is
// disabled; a nil *Cache is safe to use and never hits.
func New(cfg config.RedisConfig, logger *observability.Logger) *Cache {
	if !cfg.Enabled {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &Cache{
		client: client,
		ttl:    time.Duration(cfg.TTLSeconds) * time.Second,
		logger: logger,
	}
}

// Get unmarshals the cached value under key into dest and reports whether
// a fresh entry existed.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil {
		return false
	}
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn(ctx, fmt.Sprintf("cache read failed for %s", key))
		}
		return false
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		c.logger.Warn(ctx, fmt.Sprintf("cache entry for %s is not decodable, treating as miss", key))
		return false
	}
	return true
}

// Set stores value under key with the configured TTL. Errors are logged
// and swallowed.
func (c *Cache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn(ctx, fmt.Sprintf("failed to marshal cache entry for %s", key))
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn(ctx, fmt.Sprintf("cache write failed for %s", key))
	}
}

// Close releases the underlying Redis connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
