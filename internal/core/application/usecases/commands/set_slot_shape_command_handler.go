package commands

import (
	"context"
	"log/slog"

	"planner/internal/metrics"
)

// SetSlotShapeResult reports whether the new shape was saved.
type SetSlotShapeResult struct {
	Persisted bool
}

type SetSlotShapeCommandHandler struct {
	uowFactory TruckUoWFactory
	logger     *slog.Logger
}

func NewSetSlotShapeCommandHandler(uowFactory TruckUoWFactory, logger *slog.Logger) SetSlotShapeCommandHandler {
	return SetSlotShapeCommandHandler{
		uowFactory: uowFactory,
		logger:     componentLogger(logger, "set_slot_shape"),
	}
}

// Handle returns truck.ErrInvalidShapeChange when the trip refuses the shape.
// Orders are never moved by a shape change.
func (h SetSlotShapeCommandHandler) Handle(ctx context.Context, cmd SetSlotShapeCommand) (SetSlotShapeResult, error) {
	if err := cmd.Validate(); err != nil {
		return SetSlotShapeResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SetSlotShapeResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	truckRepo := uow.TruckRepository()

	tr, err := truckRepo.Get(ctx, cmd.TruckID())
	if err != nil {
		return SetSlotShapeResult{}, err
	}

	trip, err := tr.Trip(cmd.TripID())
	if err != nil {
		return SetSlotShapeResult{}, err
	}

	shape := cmd.Shape().String()
	if err = trip.SetShape(cmd.SlotIndex(), cmd.Shape()); err != nil {
		metrics.ShapeChanges.WithLabelValues(shape, metrics.OutcomeRejected).Inc()
		return SetSlotShapeResult{}, err
	}
	metrics.ShapeChanges.WithLabelValues(shape, metrics.OutcomeOK).Inc()

	h.logger.InfoContext(ctx, "slot shape changed",
		"truck_id", tr.ID().String(),
		"trip_id", trip.ID().String(),
		"slot", cmd.SlotIndex(),
		"shape", shape,
	)

	persisted := persistAfterMutation(ctx, h.logger, "set_slot_shape", func() error {
		if err := truckRepo.Update(ctx, tr); err != nil {
			return err
		}
		return uow.Commit(ctx)
	})

	return SetSlotShapeResult{Persisted: persisted}, nil
}
