package commands

import (
	"errors"
	"fmt"
	"strings"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/pkg/errs"
	"planner/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand registers a customer order on a truck.
//
// Example:
//
//	loc := kernel.MustNewCoordinate(52.09, 5.12)
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), truckID, "SO-10042", "Bakkerij Jansen", 3, &loc)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	truckID    kernel.UUID
	code       string
	customer   string
	pallets    int
	coordinate *kernel.Coordinate

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the ids, a non-blank code and a positive pallet count.
// coordinate may be nil for addresses that were not geocoded.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	truckID kernel.UUID,
	code string,
	customer string,
	pallets int,
	coordinate *kernel.Coordinate,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		customer: customer,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTruckID(truckID),
		cmd.setCode(code),
		cmd.setPallets(pallets),
		cmd.setCoordinate(coordinate),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) TruckID() kernel.UUID {
	return c.truckID
}

func (c CreateOrderCommand) Code() string {
	return c.code
}

func (c CreateOrderCommand) Customer() string {
	return c.customer
}

func (c CreateOrderCommand) Pallets() int {
	return c.pallets
}

// Coordinate returns nil when the order has no delivery position.
func (c CreateOrderCommand) Coordinate() *kernel.Coordinate {
	return c.coordinate
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setTruckID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("truckID", err)
	}
	c.truckID = id
	return nil
}

func (c *CreateOrderCommand) setCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("code")
	}
	c.code = code
	return nil
}

func (c *CreateOrderCommand) setPallets(pallets int) error {
	if pallets <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("pallets", fmt.Errorf("%d is not greater than 0", pallets))
	}
	c.pallets = pallets
	return nil
}

func (c *CreateOrderCommand) setCoordinate(coordinate *kernel.Coordinate) error {
	if coordinate == nil {
		return nil
	}
	if err := coordinate.Validate(); err != nil {
		return err
	}
	v := *coordinate
	c.coordinate = &v
	return nil
}
