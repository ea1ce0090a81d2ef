// Package redis keeps optimized truck routes in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "planner:route:"

	// DefaultTTL bounds how long a route survives without being recomputed.
	DefaultTTL = 24 * time.Hour
)

// RouteCache stores one JSON encoded ports.CachedRoute per truck. An entry whose
// fingerprint differs from the caller's is reported as a miss.
type RouteCache struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewRouteCache wraps client. ttl below or equal to zero selects DefaultTTL.
func NewRouteCache(client *goredis.Client, ttl time.Duration) *RouteCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RouteCache{client: client, ttl: ttl}
}

// Connect parses a redis:// URL and pings the server.
//
// Example:
//
//	cache, err := redis.Connect(ctx, "redis://localhost:6379/0", time.Hour)
func Connect(ctx context.Context, url string, ttl time.Duration) (*RouteCache, error) {
	opt, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := goredis.NewClient(opt)
	if err = client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRouteCache(client, ttl), nil
}

func (c *RouteCache) Get(ctx context.Context, truckID kernel.UUID, fingerprint string) (ports.CachedRoute, error) {
	data, err := c.client.Get(ctx, key(truckID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return ports.CachedRoute{}, ports.ErrRouteNotCached
	}
	if err != nil {
		return ports.CachedRoute{}, err
	}

	var route ports.CachedRoute
	if err = json.Unmarshal(data, &route); err != nil {
		return ports.CachedRoute{}, fmt.Errorf("decode cached route: %w", err)
	}
	if route.Fingerprint != fingerprint {
		return ports.CachedRoute{}, ports.ErrRouteNotCached
	}
	return route, nil
}

func (c *RouteCache) Set(ctx context.Context, truckID kernel.UUID, route ports.CachedRoute) error {
	data, err := json.Marshal(route)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key(truckID), data, c.ttl).Err()
}

func (c *RouteCache) Close() error {
	return c.client.Close()
}

func key(truckID kernel.UUID) string {
	return keyPrefix + truckID.String()
}

// NopRouteCache is used when no Redis is configured. Every lookup misses.
type NopRouteCache struct{}

func (NopRouteCache) Get(context.Context, kernel.UUID, string) (ports.CachedRoute, error) {
	return ports.CachedRoute{}, ports.ErrRouteNotCached
}

func (NopRouteCache) Set(context.Context, kernel.UUID, ports.CachedRoute) error {
	return nil
}

