package commands

import (
	"context"

	"planner/internal/core/domain/model/order"
)

// CreateOrderCommandHandler adds an Unplanned order to an existing truck.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{uowFactory: uowFactory}
}

// Handle fails with an errs.ObjectNotFoundError when the truck does not exist.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.TruckRepository().Get(ctx, cmd.TruckID()); err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.TruckID(), cmd.Code(), cmd.Customer(), cmd.Pallets(), cmd.Coordinate())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
