package commands

import (
	"context"

	"planner/internal/core/domain/model/kernel"
)

// AddTripResult identifies the trip that was appended.
type AddTripResult struct {
	TripID   kernel.UUID
	Sequence int
}

type AddTripCommandHandler struct {
	uowFactory TruckUoWFactory
}

func NewAddTripCommandHandler(uowFactory TruckUoWFactory) AddTripCommandHandler {
	return AddTripCommandHandler{uowFactory: uowFactory}
}

func (h AddTripCommandHandler) Handle(ctx context.Context, cmd AddTripCommand) (AddTripResult, error) {
	if err := cmd.Validate(); err != nil {
		return AddTripResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AddTripResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.TruckRepository()
	tr, err := repo.Get(ctx, cmd.TruckID())
	if err != nil {
		return AddTripResult{}, err
	}

	trip, err := tr.AddTrip()
	if err != nil {
		return AddTripResult{}, err
	}

	if err = repo.Update(ctx, tr); err != nil {
		return AddTripResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AddTripResult{}, err
	}

	return AddTripResult{TripID: trip.ID(), Sequence: trip.Sequence()}, nil
}
