package queries

import (
	"errors"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/pkg/guard"
)

var ErrGetTruckRouteQueryIsNotConstructed = errors.New(
	"GetTruckRouteQuery must be created via NewGetTruckRouteQuery constructor",
)

// GetTruckRouteQuery requests the optimized delivery route over all of a truck's orders.
//
// Example:
//
//	query, _ := NewGetTruckRouteQuery(truckID)
//	route, err := handler.Handle(ctx, query)
//	fmt.Printf("%d stops, %.1f km\n", len(route.Stops), route.TotalKm)
type GetTruckRouteQuery struct {
	truckID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetTruckRouteQuery(truckID kernel.UUID) (GetTruckRouteQuery, error) {
	if err := truckID.Validate(); err != nil {
		return GetTruckRouteQuery{}, err
	}
	return GetTruckRouteQuery{truckID: truckID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTruckRouteQuery) Validate() error {
	return q.guard.Validate(ErrGetTruckRouteQueryIsNotConstructed)
}

func (q GetTruckRouteQuery) TruckID() kernel.UUID {
	return q.truckID
}

type TruckRouteStop struct {
	Sequence   int
	OrderID    kernel.UUID
	Code       string
	Customer   string
	Coordinate kernel.Coordinate
	LegKm      float64
}

// GetTruckRouteQueryResponse is the optimized route. Orders without a coordinate
// are listed in Skipped and are not part of Stops.
type GetTruckRouteQueryResponse struct {
	TruckID        kernel.UUID
	Origin         kernel.Coordinate
	Stops          []TruckRouteStop
	Skipped        []kernel.UUID
	ConstructionKm float64
	TotalKm        float64
	Passes         int
	Cached         bool
}
