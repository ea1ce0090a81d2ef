package commands

import (
	"errors"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/truck"
	"planner/internal/pkg/guard"
)

var ErrEvictSlotCommandIsNotConstructed = errors.New(
	"EvictSlotCommand must be created via NewEvictSlotCommand constructor",
)

// EvictSlotCommand frees a single slot of a trip.
type EvictSlotCommand struct { //nolint:recvcheck //using for validation
	truckID   kernel.UUID
	tripID    kernel.UUID
	slotIndex int

	guard guard.ConstructorGuard
}

func NewEvictSlotCommand(truckID kernel.UUID, tripID kernel.UUID, slotIndex int) (EvictSlotCommand, error) {
	if err := errors.Join(truckID.Validate(), tripID.Validate(), truck.ValidateIndex(slotIndex)); err != nil {
		return EvictSlotCommand{}, err
	}

	return EvictSlotCommand{
		truckID:   truckID,
		tripID:    tripID,
		slotIndex: slotIndex,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c EvictSlotCommand) Validate() error {
	return c.guard.Validate(ErrEvictSlotCommandIsNotConstructed)
}

func (c EvictSlotCommand) TruckID() kernel.UUID {
	return c.truckID
}

func (c EvictSlotCommand) TripID() kernel.UUID {
	return c.tripID
}

func (c EvictSlotCommand) SlotIndex() int {
	return c.slotIndex
}
