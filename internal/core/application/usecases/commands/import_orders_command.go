package commands

import (
	"errors"
	"fmt"
	"strings"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/pkg/errs"
	"planner/internal/pkg/guard"
)

var ErrImportOrdersCommandIsNotConstructed = errors.New(
	"ImportOrdersCommand must be created via NewImportOrdersCommand constructor",
)

// ImportedOrder is one row of an order export. Lat and Lng are either both set or both nil.
type ImportedOrder struct {
	Code     string
	Customer string
	Pallets  int
	Lat      *float64
	Lng      *float64
}

// ImportOrdersCommand registers a batch of orders on one truck. Rows are validated
// together and the whole batch is rejected on the first bad row.
type ImportOrdersCommand struct { //nolint:recvcheck //using for validation
	truckID kernel.UUID
	orders  []CreateOrderCommand

	guard guard.ConstructorGuard
}

func NewImportOrdersCommand(truckID kernel.UUID, rows []ImportedOrder) (ImportOrdersCommand, error) {
	if err := truckID.Validate(); err != nil {
		return ImportOrdersCommand{}, errs.NewValueIsRequiredErrorWithCause("truckID", err)
	}
	if len(rows) == 0 {
		return ImportOrdersCommand{}, errs.NewValueIsRequiredError("rows")
	}

	codes := make(map[string]int, len(rows))
	orders := make([]CreateOrderCommand, 0, len(rows))
	var rowErrs []error

	for i, row := range rows {
		code := strings.TrimSpace(row.Code)
		if first, ok := codes[code]; ok && code != "" {
			rowErrs = append(rowErrs, fmt.Errorf("row %d: code %q duplicates row %d: %w",
				i+1, code, first+1, errs.ErrValueIsInvalid))
			continue
		}
		codes[code] = i

		coordinate, err := row.coordinate()
		if err != nil {
			rowErrs = append(rowErrs, fmt.Errorf("row %d: %w", i+1, err))
			continue
		}

		cmd, err := NewCreateOrderCommand(kernel.NewUUID(), truckID, code, strings.TrimSpace(row.Customer), row.Pallets, coordinate)
		if err != nil {
			rowErrs = append(rowErrs, fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		orders = append(orders, cmd)
	}

	if err := errors.Join(rowErrs...); err != nil {
		return ImportOrdersCommand{}, err
	}

	return ImportOrdersCommand{
		truckID: truckID,
		orders:  orders,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ImportOrdersCommand) Validate() error {
	return c.guard.Validate(ErrImportOrdersCommandIsNotConstructed)
}

func (c ImportOrdersCommand) TruckID() kernel.UUID {
	return c.truckID
}

// Orders returns one validated CreateOrderCommand per row, in row order.
func (c ImportOrdersCommand) Orders() []CreateOrderCommand {
	out := make([]CreateOrderCommand, len(c.orders))
	copy(out, c.orders)
	return out
}

func (r ImportedOrder) coordinate() (*kernel.Coordinate, error) {
	switch {
	case r.Lat == nil && r.Lng == nil:
		return nil, nil
	case r.Lat == nil || r.Lng == nil:
		return nil, errs.NewValueIsInvalidErrorWithCause("coordinate", errors.New("lat and lng must be given together"))
	}

	c, err := kernel.NewCoordinate(*r.Lat, *r.Lng)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
