package commands

import (
	"context"

	"planner/internal/core/domain/model/truck"
)

// CreateTruckCommandHandler creates a truck with its first trip.
type CreateTruckCommandHandler struct {
	uowFactory TruckUoWFactory
}

func NewCreateTruckCommandHandler(uowFactory TruckUoWFactory) CreateTruckCommandHandler {
	return CreateTruckCommandHandler{uowFactory: uowFactory}
}

func (h CreateTruckCommandHandler) Handle(ctx context.Context, cmd CreateTruckCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	tr, err := truck.NewTruck(cmd.TruckID(), cmd.Name(), cmd.Date())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TruckRepository().Add(ctx, tr); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
