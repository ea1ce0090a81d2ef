package commands

import (
	"errors"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/truck"
	"planner/internal/pkg/guard"
)

var ErrSetSlotShapeCommandIsNotConstructed = errors.New(
	"SetSlotShapeCommand must be created via NewSetSlotShapeCommand constructor",
)

// SetSlotShapeCommand switches one slot between Square and Rect.
type SetSlotShapeCommand struct { //nolint:recvcheck //using for validation
	truckID   kernel.UUID
	tripID    kernel.UUID
	slotIndex int
	shape     truck.Shape

	guard guard.ConstructorGuard
}

func NewSetSlotShapeCommand(
	truckID kernel.UUID,
	tripID kernel.UUID,
	slotIndex int,
	shape truck.Shape,
) (SetSlotShapeCommand, error) {
	if err := errors.Join(
		truckID.Validate(),
		tripID.Validate(),
		truck.ValidateIndex(slotIndex),
		shape.Validate(),
	); err != nil {
		return SetSlotShapeCommand{}, err
	}

	return SetSlotShapeCommand{
		truckID:   truckID,
		tripID:    tripID,
		slotIndex: slotIndex,
		shape:     shape,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SetSlotShapeCommand) Validate() error {
	return c.guard.Validate(ErrSetSlotShapeCommandIsNotConstructed)
}

func (c SetSlotShapeCommand) TruckID() kernel.UUID {
	return c.truckID
}

func (c SetSlotShapeCommand) TripID() kernel.UUID {
	return c.tripID
}

func (c SetSlotShapeCommand) SlotIndex() int {
	return c.slotIndex
}

func (c SetSlotShapeCommand) Shape() truck.Shape {
	return c.shape
}
