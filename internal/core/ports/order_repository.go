package ports

import (
	"context"
	"errors"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/order"
)

// ErrDuplicateOrderCode is returned by Add when the truck already has an order with the same code.
var ErrDuplicateOrderCode = errors.New("order code already exists on truck")

// OrderRepository persists Order aggregates.
type OrderRepository interface {
	Add(ctx context.Context, aggregate *order.Order) error

	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads one order. A miss is an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByTruck returns the truck's orders sorted by code, which is the stable
	// input order used for routing.
	GetAllByTruck(ctx context.Context, truckID kernel.UUID) ([]*order.Order, error)
}
