// Package cache keeps derived show ratings in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Aggregate is the cached form of a show's combined rating.
type Aggregate struct {
	Average *float64 `json:"average"`
	Count   int      `json:"count"`
}

// Version is the generation of a show's cached aggregate. Invalidate bumps it.
type Version int64

// RatingCache stores aggregates under show:<id>:rating:v<version>, with the
// current version kept in show:<id>:rating:version. A value computed before an
// Invalidate is written under the old version and never read again.
// A nil *RatingCache, or one built without a client, is a no-op cache that
// always misses.
type RatingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRatingCache wraps client. client may be nil.
func NewRatingCache(client *redis.Client, ttl time.Duration) *RatingCache {
	return &RatingCache{client: client, ttl: ttl}
}

// Connect opens a Redis client from a redis:// URL and verifies it with PING.
func Connect(ctx context.Context, url, password string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return rdb, nil
}

func versionKey(showID string) string {
	return fmt.Sprintf("show:%s:rating:version", showID)
}

func valueKey(showID string, v Version) string {
	return fmt.Sprintf("show:%s:rating:v%d", showID, v)
}

// Get returns the cached aggregate and the version it was read at. On a miss
// the version is still returned so the caller can Set what it computes.
// Redis failures are logged and reported as a miss.
func (c *RatingCache) Get(ctx context.Context, showID string) (Aggregate, Version, bool) {
	if c == nil || c.client == nil {
		return Aggregate{}, 0, false
	}
	n, err := c.client.Get(ctx, versionKey(showID)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		slog.WarnContext(ctx, "rating_cache_get_failed", "show_id", showID, "error", err)
		return Aggregate{}, 0, false
	}
	v := Version(n)

	raw, err := c.client.Get(ctx, valueKey(showID, v)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.WarnContext(ctx, "rating_cache_get_failed", "show_id", showID, "error", err)
		}
		return Aggregate{}, v, false
	}
	var agg Aggregate
	if err := json.Unmarshal(raw, &agg); err != nil {
		slog.WarnContext(ctx, "rating_cache_decode_failed", "show_id", showID, "error", err)
		return Aggregate{}, v, false
	}
	return agg, v, true
}

// Set stores agg under version v, the version returned by the Get that
// preceded the computation.
func (c *RatingCache) Set(ctx context.Context, showID string, v Version, agg Aggregate) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(agg)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, valueKey(showID, v), raw, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "rating_cache_set_failed", "show_id", showID, "error", err)
	}
}

// Invalidate moves the show to a new version and drops the previous value.
func (c *RatingCache) Invalidate(ctx context.Context, showID string) {
	if c == nil || c.client == nil {
		return
	}
	n, err := c.client.Incr(ctx, versionKey(showID)).Result()
	if err != nil {
		slog.WarnContext(ctx, "rating_cache_invalidate_failed", "show_id", showID, "error", err)
		return
	}
	if err := c.client.Del(ctx, valueKey(showID, Version(n-1))).Err(); err != nil {
		slog.WarnContext(ctx, "rating_cache_invalidate_failed", "show_id", showID, "error", err)
	}
}

func (c *RatingCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
