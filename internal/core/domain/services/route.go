package services

import (
	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/order"
)

// Stop is one delivery in a route.
type Stop struct {
	// Sequence is the 0-based position in the route.
	Sequence int
	Order    *order.Order
	// LegKm is the distance from the previous stop, or from the origin for the
	// first one. Depth routes leave it at zero.
	LegKm float64
}

// Route is an ordered list of stops. A route without stops is degenerate; it is a
// valid result, not an error.
type Route struct {
	Stops []Stop

	// ConstructionKm is the nearest-neighbour length before 2-opt. Zero for depth routes.
	ConstructionKm float64
	// TotalKm is the final open path length from the origin.
	TotalKm float64
	// Passes is the number of 2-opt scans performed.
	Passes int
}

func (r Route) IsDegenerate() bool {
	return len(r.Stops) == 0
}

// OrderIDs lists the stops' order ids in route order.
func (r Route) OrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(r.Stops))
	for _, s := range r.Stops {
		ids = append(ids, s.Order.ID())
	}
	return ids
}
