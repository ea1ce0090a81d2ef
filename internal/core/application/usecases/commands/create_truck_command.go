package commands

import (
	"errors"
	"strings"
	"time"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/pkg/errs"
	"planner/internal/pkg/guard"
)

var ErrCreateTruckCommandIsNotConstructed = errors.New(
	"CreateTruckCommand must be created via NewCreateTruckCommand constructor",
)

// CreateTruckCommand registers a truck for a delivery date. The truck starts with one empty trip.
//
// Example:
//
//	cmd, err := NewCreateTruckCommand(kernel.NewUUID(), "Truck 3", date)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type CreateTruckCommand struct { //nolint:recvcheck //using for validation
	truckID kernel.UUID
	name    string
	date    time.Time

	guard guard.ConstructorGuard
}

func NewCreateTruckCommand(truckID kernel.UUID, name string, date time.Time) (CreateTruckCommand, error) {
	cmd := CreateTruckCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setTruckID(truckID),
		cmd.setName(name),
		cmd.setDate(date),
	); err != nil {
		return CreateTruckCommand{}, err
	}
	return cmd, nil
}

func (c CreateTruckCommand) Validate() error {
	return c.guard.Validate(ErrCreateTruckCommandIsNotConstructed)
}

func (c CreateTruckCommand) TruckID() kernel.UUID {
	return c.truckID
}

func (c CreateTruckCommand) Name() string {
	return c.name
}

func (c CreateTruckCommand) Date() time.Time {
	return c.date
}

func (c *CreateTruckCommand) setTruckID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.truckID = id
	return nil
}

func (c *CreateTruckCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateTruckCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	c.date = date
	return nil
}
