package queries

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/order"
	"planner/internal/core/domain/services"
	"planner/internal/core/ports"
	"planner/internal/metrics"

	"github.com/cespare/xxhash/v2"
)

const (
	cacheHit   = "hit"
	cacheMiss  = "miss"
	cacheError = "error"
)

// GetTruckRouteQueryHandler runs the route optimizer from the depot over a truck's
// orders. Results are cached per truck under a fingerprint of the routing input,
// so any change to the order set or a coordinate makes the cached entry stale.
// Cache failures are logged and the route is computed directly.
type GetTruckRouteQueryHandler struct {
	repos     RepositoriesFactory
	cache     ports.RouteCache
	optimizer services.RouteOptimizer
	origin    kernel.Coordinate
	logger    *slog.Logger
}

func NewGetTruckRouteQueryHandler(
	repos RepositoriesFactory,
	cache ports.RouteCache,
	optimizer services.RouteOptimizer,
	origin kernel.Coordinate,
	logger *slog.Logger,
) GetTruckRouteQueryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return GetTruckRouteQueryHandler{
		repos:     repos,
		cache:     cache,
		optimizer: optimizer,
		origin:    origin,
		logger:    logger.With("component", "truck_route"),
	}
}

func (h GetTruckRouteQueryHandler) Handle(ctx context.Context, query GetTruckRouteQuery) (GetTruckRouteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTruckRouteQueryResponse{}, err
	}

	repos := h.repos.Create()

	tr, err := repos.TruckRepository().Get(ctx, query.TruckID())
	if err != nil {
		return GetTruckRouteQueryResponse{}, err
	}

	orders, err := repos.OrderRepository().GetAllByTruck(ctx, tr.ID())
	if err != nil {
		return GetTruckRouteQueryResponse{}, err
	}

	fingerprint := h.fingerprint(orders)

	if resp, ok := h.fromCache(ctx, tr.ID(), fingerprint, orders); ok {
		return resp, nil
	}

	started := time.Now()
	route := h.optimizer.Optimize(h.origin, orders)
	metrics.RouteDuration.WithLabelValues("optimized").Observe(time.Since(started).Seconds())
	metrics.RoutePasses.Observe(float64(route.Passes))

	cached := ports.CachedRoute{
		Fingerprint:    fingerprint,
		OrderIDs:       make([]string, 0, len(route.Stops)),
		ConstructionKm: route.ConstructionKm,
		TotalKm:        route.TotalKm,
		Passes:         route.Passes,
	}
	for _, id := range route.OrderIDs() {
		cached.OrderIDs = append(cached.OrderIDs, id.String())
	}
	if err = h.cache.Set(ctx, tr.ID(), cached); err != nil {
		h.logger.WarnContext(ctx, "route not cached", "truck_id", tr.ID().String(), "error", err)
	}

	return h.response(tr.ID(), route, orders, false), nil
}

func (h GetTruckRouteQueryHandler) fromCache(
	ctx context.Context,
	truckID kernel.UUID,
	fingerprint string,
	orders []*order.Order,
) (GetTruckRouteQueryResponse, bool) {
	entry, err := h.cache.Get(ctx, truckID, fingerprint)
	switch {
	case errors.Is(err, ports.ErrRouteNotCached):
		metrics.RouteCache.WithLabelValues(cacheMiss).Inc()
		return GetTruckRouteQueryResponse{}, false
	case err != nil:
		metrics.RouteCache.WithLabelValues(cacheError).Inc()
		h.logger.WarnContext(ctx, "route cache unavailable", "truck_id", truckID.String(), "error", err)
		return GetTruckRouteQueryResponse{}, false
	}

	route, err := h.restore(entry, orders)
	if err != nil {
		metrics.RouteCache.WithLabelValues(cacheError).Inc()
		h.logger.WarnContext(ctx, "cached route discarded", "truck_id", truckID.String(), "error", err)
		return GetTruckRouteQueryResponse{}, false
	}

	metrics.RouteCache.WithLabelValues(cacheHit).Inc()
	return h.response(truckID, route, orders, true), true
}

// restore rebuilds a Route from cached order ids, recomputing leg distances.
func (h GetTruckRouteQueryHandler) restore(entry ports.CachedRoute, orders []*order.Order) (services.Route, error) {
	byID := make(map[string]*order.Order, len(orders))
	for _, o := range orders {
		byID[o.ID().String()] = o
	}

	route := services.Route{
		Stops:          make([]services.Stop, 0, len(entry.OrderIDs)),
		ConstructionKm: entry.ConstructionKm,
		TotalKm:        entry.TotalKm,
		Passes:         entry.Passes,
	}
	prev := h.origin
	for i, id := range entry.OrderIDs {
		o, ok := byID[id]
		if !ok {
			return services.Route{}, fmt.Errorf("order %s is no longer on the truck", id)
		}
		c, ok := o.Coordinate()
		if !ok {
			return services.Route{}, fmt.Errorf("order %s has no coordinate", id)
		}
		route.Stops = append(route.Stops, services.Stop{Sequence: i, Order: o, LegKm: prev.DistanceKm(c)})
		prev = c
	}
	return route, nil
}

func (h GetTruckRouteQueryHandler) response(
	truckID kernel.UUID,
	route services.Route,
	orders []*order.Order,
	cached bool,
) GetTruckRouteQueryResponse {
	resp := GetTruckRouteQueryResponse{
		TruckID:        truckID,
		Origin:         h.origin,
		Stops:          make([]TruckRouteStop, 0, len(route.Stops)),
		Skipped:        make([]kernel.UUID, 0),
		ConstructionKm: route.ConstructionKm,
		TotalKm:        route.TotalKm,
		Passes:         route.Passes,
		Cached:         cached,
	}
	for _, s := range route.Stops {
		c, _ := s.Order.Coordinate()
		resp.Stops = append(resp.Stops, TruckRouteStop{
			Sequence:   s.Sequence,
			OrderID:    s.Order.ID(),
			Code:       s.Order.Code(),
			Customer:   s.Order.Customer(),
			Coordinate: c,
			LegKm:      s.LegKm,
		})
	}
	for _, o := range orders {
		if _, ok := o.Coordinate(); !ok {
			resp.Skipped = append(resp.Skipped, o.ID())
		}
	}
	return resp
}

// fingerprint hashes everything the optimizer result depends on: origin, pass
// limit and the routable orders with their coordinates, in input order.
func (h GetTruckRouteQueryHandler) fingerprint(orders []*order.Order) string {
	d := xxhash.New()
	writeCoordinate(d, h.origin)
	_, _ = d.WriteString(strconv.Itoa(h.optimizer.MaxPasses()))
	for _, o := range orders {
		c, ok := o.Coordinate()
		if !ok {
			continue
		}
		_, _ = d.WriteString("|" + o.ID().String() + "@")
		writeCoordinate(d, c)
	}
	return strconv.FormatUint(d.Sum64(), 16)
}

func writeCoordinate(d *xxhash.Digest, c kernel.Coordinate) {
	_, _ = d.WriteString(strconv.FormatFloat(c.Lat(), 'f', -1, 64))
	_, _ = d.WriteString(",")
	_, _ = d.WriteString(strconv.FormatFloat(c.Lng(), 'f', -1, 64))
}
