package commands

import (
	"context"
	"fmt"
	"log/slog"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/order"
	"planner/internal/core/domain/model/truck"
	"planner/internal/core/domain/services"
	"planner/internal/metrics"
)

// EvictSlotResult names the order that lost the slot. Unplanned is true when that
// was the order's last slot.
type EvictSlotResult struct {
	OrderID   kernel.UUID
	Unplanned bool
	Persisted bool
}

type EvictSlotCommandHandler struct {
	uowFactory UoWFactory
	placer     services.PalletPlacer
	logger     *slog.Logger
}

func NewEvictSlotCommandHandler(uowFactory UoWFactory, logger *slog.Logger) EvictSlotCommandHandler {
	return EvictSlotCommandHandler{
		uowFactory: uowFactory,
		placer:     services.NewPalletPlacer(),
		logger:     componentLogger(logger, "evict_slot"),
	}
}

// Handle returns truck.ErrSlotIsEmpty when nothing occupies the slot.
func (h EvictSlotCommandHandler) Handle(ctx context.Context, cmd EvictSlotCommand) (EvictSlotResult, error) {
	if err := cmd.Validate(); err != nil {
		return EvictSlotResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return EvictSlotResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	truckRepo := uow.TruckRepository()
	orderRepo := uow.OrderRepository()

	tr, err := truckRepo.Get(ctx, cmd.TruckID())
	if err != nil {
		return EvictSlotResult{}, err
	}

	trip, err := tr.Trip(cmd.TripID())
	if err != nil {
		return EvictSlotResult{}, err
	}

	slot, err := trip.Slot(cmd.SlotIndex())
	if err != nil {
		return EvictSlotResult{}, err
	}
	occupant, ok := slot.Occupant()
	if !ok {
		metrics.Evictions.WithLabelValues(metrics.OutcomeRejected).Inc()
		return EvictSlotResult{}, fmt.Errorf("%w: %d", truck.ErrSlotIsEmpty, cmd.SlotIndex())
	}

	o, err := orderRepo.Get(ctx, occupant)
	if err != nil {
		return EvictSlotResult{}, err
	}

	if err = h.placer.Evict(trip, o, cmd.SlotIndex()); err != nil {
		metrics.Evictions.WithLabelValues(metrics.OutcomeRejected).Inc()
		return EvictSlotResult{}, err
	}
	metrics.Evictions.WithLabelValues(metrics.OutcomeOK).Inc()

	unplanned := o.Status() == order.Unplanned
	h.logger.InfoContext(ctx, "slot evicted",
		"truck_id", tr.ID().String(),
		"trip_id", trip.ID().String(),
		"order_id", o.ID().String(),
		"slot", cmd.SlotIndex(),
		"unplanned", unplanned,
	)

	persisted := persistAfterMutation(ctx, h.logger, "evict_slot", func() error {
		if err := truckRepo.Update(ctx, tr); err != nil {
			return err
		}
		if err := orderRepo.Update(ctx, o); err != nil {
			return err
		}
		return uow.Commit(ctx)
	})

	return EvictSlotResult{OrderID: o.ID(), Unplanned: unplanned, Persisted: persisted}, nil
}
