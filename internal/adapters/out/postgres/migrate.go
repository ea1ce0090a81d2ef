package postgres

import (
	"context"

	"planner/internal/adapters/out/postgres/orderrepo"
	"planner/internal/adapters/out/postgres/truckrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the planner tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(
		&truckrepo.TruckDTO{},
		&truckrepo.TripDTO{},
		&truckrepo.SlotDTO{},
		&orderrepo.OrderDTO{},
	)
}
