package queries

import (
	"errors"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/pkg/guard"
)

var ErrGetLoadingSheetQueryIsNotConstructed = errors.New(
	"GetLoadingSheetQuery must be created via NewGetLoadingSheetQuery constructor",
)

// GetLoadingSheetQuery requests the printable loading sheet of a truck.
type GetLoadingSheetQuery struct {
	truckID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetLoadingSheetQuery(truckID kernel.UUID) (GetLoadingSheetQuery, error) {
	if err := truckID.Validate(); err != nil {
		return GetLoadingSheetQuery{}, err
	}
	return GetLoadingSheetQuery{truckID: truckID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetLoadingSheetQuery) Validate() error {
	return q.guard.Validate(ErrGetLoadingSheetQueryIsNotConstructed)
}

func (q GetLoadingSheetQuery) TruckID() kernel.UUID {
	return q.truckID
}

type GetLoadingSheetQueryResponse struct {
	FileName string
	Content  []byte
}
