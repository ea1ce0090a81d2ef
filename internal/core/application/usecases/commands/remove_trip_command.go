package commands

import (
	"errors"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/pkg/errs"
	"planner/internal/pkg/guard"
)

var ErrRemoveTripCommandIsNotConstructed = errors.New(
	"RemoveTripCommand must be created via NewRemoveTripCommand constructor",
)

// RemoveTripCommand deletes an empty trip from a truck.
type RemoveTripCommand struct {
	truckID kernel.UUID
	tripID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveTripCommand(truckID kernel.UUID, tripID kernel.UUID) (RemoveTripCommand, error) {
	if err := errors.Join(
		validateID("truckID", truckID),
		validateID("tripID", tripID),
	); err != nil {
		return RemoveTripCommand{}, err
	}
	return RemoveTripCommand{truckID: truckID, tripID: tripID, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveTripCommand) Validate() error {
	return c.guard.Validate(ErrRemoveTripCommandIsNotConstructed)
}

func (c RemoveTripCommand) TruckID() kernel.UUID {
	return c.truckID
}

func (c RemoveTripCommand) TripID() kernel.UUID {
	return c.tripID
}

func validateID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}
