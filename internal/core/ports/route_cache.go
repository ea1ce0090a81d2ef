package ports

import (
	"context"
	"errors"

	"planner/internal/core/domain/model/kernel"
)

// ErrRouteNotCached is returned by RouteCache.Get on a miss or a stale entry.
var ErrRouteNotCached = errors.New("route not cached")

// CachedRoute is the serializable outcome of an optimized route.
type CachedRoute struct {
	// Fingerprint identifies the input the route was computed from: origin,
	// pass limit and every routable order with its coordinate.
	Fingerprint    string   `json:"fingerprint"`
	OrderIDs       []string `json:"orderIds"`
	ConstructionKm float64  `json:"constructionKm"`
	TotalKm        float64  `json:"totalKm"`
	Passes         int      `json:"passes"`
}

// RouteCache keeps optimized routes per truck. Entries whose fingerprint no longer
// matches the truck's orders are treated as misses and overwritten by the next Set,
// so mutations never need to evict.
type RouteCache interface {
	Get(ctx context.Context, truckID kernel.UUID, fingerprint string) (CachedRoute, error)

	Set(ctx context.Context, truckID kernel.UUID, route CachedRoute) error
}
