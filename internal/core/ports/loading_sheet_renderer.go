package ports

import (
	"io"

	"planner/internal/core/domain/model/order"
	"planner/internal/core/domain/model/truck"
)

// LoadingSheetRenderer writes a printable overview of a truck's trips.
type LoadingSheetRenderer interface {
	Render(w io.Writer, tr *truck.Truck, orders []*order.Order) error
}
