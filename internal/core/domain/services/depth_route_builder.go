package services

import (
	"cmp"
	"slices"

	"planner/internal/core/domain/model/order"
	"planner/internal/core/domain/model/truck"
)

// DepthRouteBuilder orders one trip's deliveries by how deep their pallets sit.
// The order whose highest slot index is largest is unloaded first; ties keep
// the caller's order.
type DepthRouteBuilder struct{}

func NewDepthRouteBuilder() DepthRouteBuilder {
	return DepthRouteBuilder{}
}

// Build returns the unload sequence for trip. Orders not placed in trip are ignored,
// so the whole truck's order list can be passed in. No placed orders gives a
// degenerate route.
func (b DepthRouteBuilder) Build(trip *truck.Trip, orders []*order.Order) Route {
	type placed struct {
		o       *order.Order
		deepest int
	}

	var candidates []placed
	for _, o := range orders {
		if o == nil || !o.IsPlacedIn(trip.ID()) {
			continue
		}
		deepest, _ := o.DeepestSlot()
		candidates = append(candidates, placed{o: o, deepest: deepest})
	}

	slices.SortStableFunc(candidates, func(a, b placed) int {
		return cmp.Compare(b.deepest, a.deepest)
	})

	route := Route{Stops: make([]Stop, 0, len(candidates))}
	for i, c := range candidates {
		route.Stops = append(route.Stops, Stop{Sequence: i, Order: c.o})
	}
	return route
}
