package commands

import (
	"errors"
	"fmt"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/truck"
	"planner/internal/pkg/errs"
	"planner/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand places an order into a trip starting at a slot.
// A count of 0 places the order's requested pallets.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(truckID, tripID, orderID, 3, 0)
//	res, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrInsufficientContiguousSpace) {
//	    // nothing changed
//	}
//	if !res.Persisted {
//	    // placed in memory only; the warning is already logged
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	truckID    kernel.UUID
	tripID     kernel.UUID
	orderID    kernel.UUID
	startIndex int
	count      int

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(
	truckID kernel.UUID,
	tripID kernel.UUID,
	orderID kernel.UUID,
	startIndex int,
	count int,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setIDs(truckID, tripID, orderID),
		cmd.setStartIndex(startIndex),
		cmd.setCount(count),
	); err != nil {
		return PlaceOrderCommand{}, err
	}
	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) TruckID() kernel.UUID {
	return c.truckID
}

func (c PlaceOrderCommand) TripID() kernel.UUID {
	return c.tripID
}

func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PlaceOrderCommand) StartIndex() int {
	return c.startIndex
}

// Count returns 0 when the order's pallet count should be used.
func (c PlaceOrderCommand) Count() int {
	return c.count
}

func (c *PlaceOrderCommand) setIDs(truckID, tripID, orderID kernel.UUID) error {
	if err := errors.Join(truckID.Validate(), tripID.Validate(), orderID.Validate()); err != nil {
		return err
	}
	c.truckID, c.tripID, c.orderID = truckID, tripID, orderID
	return nil
}

func (c *PlaceOrderCommand) setStartIndex(index int) error {
	if err := truck.ValidateIndex(index); err != nil {
		return err
	}
	c.startIndex = index
	return nil
}

func (c *PlaceOrderCommand) setCount(count int) error {
	if count < 0 {
		return errs.NewValueIsInvalidErrorWithCause("count", fmt.Errorf("%d is negative", count))
	}
	c.count = count
	return nil
}
