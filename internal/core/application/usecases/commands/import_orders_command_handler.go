package commands

import (
	"context"
	"log/slog"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/order"
)

// ImportOrdersCommandHandler stores every row of an import in one transaction.
type ImportOrdersCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

func NewImportOrdersCommandHandler(uowFactory UoWFactory, logger *slog.Logger) ImportOrdersCommandHandler {
	return ImportOrdersCommandHandler{
		uowFactory: uowFactory,
		logger:     componentLogger(logger, "import_orders"),
	}
}

// Handle returns the new order ids in row order. Nothing is stored when any row fails.
func (h ImportOrdersCommandHandler) Handle(ctx context.Context, cmd ImportOrdersCommand) ([]kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.TruckRepository().Get(ctx, cmd.TruckID()); err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	rows := cmd.Orders()
	ids := make([]kernel.UUID, 0, len(rows))

	for _, row := range rows {
		o, err := order.NewOrder(row.OrderID(), row.TruckID(), row.Code(), row.Customer(), row.Pallets(), row.Coordinate())
		if err != nil {
			return nil, err
		}
		if err = orderRepo.Add(ctx, o); err != nil {
			return nil, err
		}
		ids = append(ids, o.ID())
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "orders imported",
		"truck_id", cmd.TruckID().String(),
		"count", len(ids),
	)
	return ids, nil
}
