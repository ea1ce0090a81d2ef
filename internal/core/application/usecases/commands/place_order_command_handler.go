package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"planner/internal/core/domain/services"
	"planner/internal/metrics"
	"planner/internal/pkg/errs"
)

// PlaceOrderResult reports the occupied slots and whether the new state was saved.
type PlaceOrderResult struct {
	Slots     []int
	Persisted bool
}

// PlaceOrderCommandHandler runs the pallet placer against a truck's trip.
//
// Domain failures (insufficient space, unknown trip or order, order already placed)
// are returned as errors and change nothing. Once the placement succeeds the handler
// saves truck and order; a failed save is logged and reported through
// PlaceOrderResult.Persisted, never as an error.
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	placer     services.PalletPlacer
	logger     *slog.Logger
}

func NewPlaceOrderCommandHandler(uowFactory UoWFactory, logger *slog.Logger) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		placer:     services.NewPalletPlacer(),
		logger:     componentLogger(logger, "place_order"),
	}
}

func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PlaceOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	truckRepo := uow.TruckRepository()
	orderRepo := uow.OrderRepository()

	tr, err := truckRepo.Get(ctx, cmd.TruckID())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	trip, err := tr.Trip(cmd.TripID())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return PlaceOrderResult{}, fmt.Errorf("%w: %w", services.ErrOrderNotFound, err)
	}
	if err != nil {
		return PlaceOrderResult{}, err
	}
	if !o.TruckID().IsEqual(tr.ID()) {
		return PlaceOrderResult{}, fmt.Errorf("%w: %s is not on truck %s", services.ErrOrderNotFound, o.ID(), tr.ID())
	}

	count := cmd.Count()
	if count == 0 {
		count = o.Pallets()
	}

	slots, err := h.placer.Place(trip, o, cmd.StartIndex(), count)
	if err != nil {
		outcome := metrics.OutcomeRejected
		if errors.Is(err, services.ErrInsufficientContiguousSpace) {
			outcome = metrics.OutcomeNoSpace
		}
		metrics.Placements.WithLabelValues(outcome).Inc()
		return PlaceOrderResult{}, err
	}
	metrics.Placements.WithLabelValues(metrics.OutcomeOK).Inc()
	metrics.PlacedPallets.Add(float64(len(slots)))

	h.logger.InfoContext(ctx, "order placed",
		"truck_id", tr.ID().String(),
		"trip_id", trip.ID().String(),
		"order_id", o.ID().String(),
		"slots", slots,
	)

	persisted := persistAfterMutation(ctx, h.logger, "place_order", func() error {
		if err := truckRepo.Update(ctx, tr); err != nil {
			return err
		}
		if err := orderRepo.Update(ctx, o); err != nil {
			return err
		}
		return uow.Commit(ctx)
	})

	return PlaceOrderResult{Slots: slots, Persisted: persisted}, nil
}
