// Package ports defines the contracts between the planning core and its adapters:
// repositories, the unit of work and the route cache.
package ports

import (
	"context"
	"time"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/truck"
)

// TruckRepository persists Truck aggregates together with their trips and slots.
type TruckRepository interface {
	// Add stores a new truck and all of its trips and slots.
	Add(ctx context.Context, aggregate *truck.Truck) error

	// Update writes the current state of an existing truck. New trips are inserted;
	// every slot is upserted in one batch keyed by (trip, index).
	Update(ctx context.Context, aggregate *truck.Truck) error

	// Get loads a truck with all trips and slots. A miss is an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*truck.Truck, error)

	// GetByDate loads every truck planned for the given delivery date.
	GetByDate(ctx context.Context, date time.Time) ([]*truck.Truck, error)
}
