package queries

import (
	"context"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTrucksForDateQueryHandler reads the planning board straight from the tables.
type GetTrucksForDateQueryHandler struct {
	db *gorm.DB
}

func NewGetTrucksForDateQueryHandler(db *gorm.DB) GetTrucksForDateQueryHandler {
	return GetTrucksForDateQueryHandler{db: db}
}

// Handle returns the trucks of the day sorted by name; an empty day yields an empty slice.
func (h GetTrucksForDateQueryHandler) Handle(
	ctx context.Context,
	query GetTrucksForDateQuery,
) ([]GetTrucksForDateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	trucks := make([]GetTrucksForDateQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.name,
			t.delivery_date,
			(SELECT COUNT(*) FROM trips tr WHERE tr.truck_id = t.id) AS trips,
			(SELECT COUNT(*) FROM orders o WHERE o.truck_id = t.id) AS orders,
			(SELECT COUNT(*) FROM orders o WHERE o.truck_id = t.id AND o.status = ?) AS planned_orders,
			(SELECT COUNT(*) FROM slots s JOIN trips tr ON tr.id = s.trip_id
				WHERE tr.truck_id = t.id AND s.order_id IS NOT NULL) AS used_slots
		FROM trucks t
		WHERE t.delivery_date = ?
		ORDER BY t.name
	`, int(order.Planned), query.Date()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetTrucksForDateQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&row.Name,
			&row.Date,
			&row.Trips,
			&row.Orders,
			&row.PlannedOrders,
			&row.UsedSlots,
		)
		if err != nil {
			return nil, err
		}

		truckID, idErr := kernel.UUIDFromGoogle(id)
		if idErr != nil {
			return nil, idErr
		}
		row.ID = truckID
		row.Date = row.Date.UTC()

		trucks = append(trucks, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return trucks, nil
}
