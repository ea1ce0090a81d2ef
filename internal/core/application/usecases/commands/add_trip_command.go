package commands

import (
	"errors"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/pkg/guard"
)

var ErrAddTripCommandIsNotConstructed = errors.New(
	"AddTripCommand must be created via NewAddTripCommand constructor",
)

// AddTripCommand appends an empty trip to a truck.
type AddTripCommand struct {
	truckID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAddTripCommand(truckID kernel.UUID) (AddTripCommand, error) {
	if err := truckID.Validate(); err != nil {
		return AddTripCommand{}, err
	}
	return AddTripCommand{truckID: truckID, guard: guard.NewConstructorGuard()}, nil
}

func (c AddTripCommand) Validate() error {
	return c.guard.Validate(ErrAddTripCommandIsNotConstructed)
}

func (c AddTripCommand) TruckID() kernel.UUID {
	return c.truckID
}
