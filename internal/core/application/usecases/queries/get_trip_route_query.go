package queries

import (
	"errors"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/pkg/guard"
)

var ErrGetTripRouteQueryIsNotConstructed = errors.New(
	"GetTripRouteQuery must be created via NewGetTripRouteQuery constructor",
)

// GetTripRouteQuery requests the unload sequence of one trip.
type GetTripRouteQuery struct {
	truckID kernel.UUID
	tripID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetTripRouteQuery(truckID, tripID kernel.UUID) (GetTripRouteQuery, error) {
	if err := errors.Join(truckID.Validate(), tripID.Validate()); err != nil {
		return GetTripRouteQuery{}, err
	}
	return GetTripRouteQuery{truckID: truckID, tripID: tripID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTripRouteQuery) Validate() error {
	return q.guard.Validate(ErrGetTripRouteQueryIsNotConstructed)
}

func (q GetTripRouteQuery) TruckID() kernel.UUID {
	return q.truckID
}

func (q GetTripRouteQuery) TripID() kernel.UUID {
	return q.tripID
}

// TripRouteStop is one delivery of a trip in unload order.
type TripRouteStop struct {
	Sequence    int
	OrderID     kernel.UUID
	Code        string
	Customer    string
	Slots       []int
	DeepestSlot int
}

type GetTripRouteQueryResponse struct {
	TripID   kernel.UUID
	Sequence int
	Stops    []TripRouteStop
}
