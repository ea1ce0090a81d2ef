package queries

import (
	"errors"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/truck"
	"planner/internal/pkg/guard"
)

var ErrGetMaxPlaceableQueryIsNotConstructed = errors.New(
	"GetMaxPlaceableQuery must be created via NewGetMaxPlaceableQuery constructor",
)

// GetMaxPlaceableQuery asks how many pallets a placement from a start slot could take.
type GetMaxPlaceableQuery struct {
	truckID    kernel.UUID
	tripID     kernel.UUID
	startIndex int

	guard guard.ConstructorGuard
}

func NewGetMaxPlaceableQuery(truckID, tripID kernel.UUID, startIndex int) (GetMaxPlaceableQuery, error) {
	if err := errors.Join(truckID.Validate(), tripID.Validate(), truck.ValidateIndex(startIndex)); err != nil {
		return GetMaxPlaceableQuery{}, err
	}
	return GetMaxPlaceableQuery{
		truckID:    truckID,
		tripID:     tripID,
		startIndex: startIndex,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetMaxPlaceableQuery) Validate() error {
	return q.guard.Validate(ErrGetMaxPlaceableQueryIsNotConstructed)
}

func (q GetMaxPlaceableQuery) TruckID() kernel.UUID {
	return q.truckID
}

func (q GetMaxPlaceableQuery) TripID() kernel.UUID {
	return q.tripID
}

func (q GetMaxPlaceableQuery) StartIndex() int {
	return q.startIndex
}

type GetMaxPlaceableQueryResponse struct {
	StartIndex int
	Max        int
}
