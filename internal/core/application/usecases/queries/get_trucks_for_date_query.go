package queries

import (
	"errors"
	"time"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/truck"
	"planner/internal/pkg/errs"
	"planner/internal/pkg/guard"
)

var ErrGetTrucksForDateQueryIsNotConstructed = errors.New(
	"GetTrucksForDateQuery must be created via NewGetTrucksForDateQuery constructor",
)

// GetTrucksForDateQuery lists the planning board for one delivery date.
//
// Example:
//
//	query, _ := NewGetTrucksForDateQuery(time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC))
//	trucks, err := handler.Handle(ctx, query)
//	for _, t := range trucks {
//	    fmt.Printf("%s: %d/%d orders planned\n", t.Name, t.PlannedOrders, t.Orders)
//	}
type GetTrucksForDateQuery struct {
	date time.Time

	guard guard.ConstructorGuard
}

// NewGetTrucksForDateQuery keys the query on truck.DeliveryDay(date).
func NewGetTrucksForDateQuery(date time.Time) (GetTrucksForDateQuery, error) {
	if date.IsZero() {
		return GetTrucksForDateQuery{}, errs.NewValueIsRequiredError("date")
	}
	return GetTrucksForDateQuery{
		date:  truck.DeliveryDay(date),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetTrucksForDateQuery) Validate() error {
	return q.guard.Validate(ErrGetTrucksForDateQueryIsNotConstructed)
}

func (q GetTrucksForDateQuery) Date() time.Time {
	return q.date
}

// GetTrucksForDateQueryResponse summarizes one truck on the planning board.
type GetTrucksForDateQueryResponse struct {
	ID            kernel.UUID
	Name          string
	Date          time.Time
	Trips         int
	Orders        int
	PlannedOrders int
	UsedSlots     int
}
