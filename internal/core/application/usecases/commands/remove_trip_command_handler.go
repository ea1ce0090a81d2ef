package commands

import (
	"context"
	"log/slog"
)

// RemoveTripResult reports how many trips the truck has left.
type RemoveTripResult struct {
	Trips int
}

// RemoveTripCommandHandler deletes an empty trip. The trip's slot rows go with it.
type RemoveTripCommandHandler struct {
	uowFactory TruckUoWFactory
	logger     *slog.Logger
}

func NewRemoveTripCommandHandler(uowFactory TruckUoWFactory, logger *slog.Logger) RemoveTripCommandHandler {
	return RemoveTripCommandHandler{
		uowFactory: uowFactory,
		logger:     componentLogger(logger, "remove_trip"),
	}
}

func (h RemoveTripCommandHandler) Handle(ctx context.Context, cmd RemoveTripCommand) (RemoveTripResult, error) {
	if err := cmd.Validate(); err != nil {
		return RemoveTripResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RemoveTripResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.TruckRepository()
	tr, err := repo.Get(ctx, cmd.TruckID())
	if err != nil {
		return RemoveTripResult{}, err
	}

	if err = tr.RemoveTrip(cmd.TripID()); err != nil {
		return RemoveTripResult{}, err
	}

	if err = repo.Update(ctx, tr); err != nil {
		return RemoveTripResult{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return RemoveTripResult{}, err
	}

	h.logger.InfoContext(ctx, "trip removed",
		"truck_id", tr.ID().String(),
		"trip_id", cmd.TripID().String(),
	)
	return RemoveTripResult{Trips: len(tr.Trips())}, nil
}
