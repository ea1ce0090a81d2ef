// Package orderrepo maps the Order aggregate onto the orders table.
package orderrepo

import (
	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderDTO is a row of the orders table. Code is unique per truck; the occupied
// slots of a planned order are kept in an integer array next to its trip.
type OrderDTO struct {
	ID       uuid.UUID     `gorm:"type:uuid;primaryKey"`
	TruckID  uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_orders_truck_code"`
	Code     string        `gorm:"type:varchar(64);not null;uniqueIndex:idx_orders_truck_code"`
	Customer string        `gorm:"type:varchar(255)"`
	Pallets  int           `gorm:"type:int;not null"`
	Lat      *float64      `gorm:"type:double precision"`
	Lng      *float64      `gorm:"type:double precision"`
	Status   int           `gorm:"type:smallint;not null;index"`
	TripID   *uuid.UUID    `gorm:"type:uuid;index"`
	Slots    pq.Int64Array `gorm:"type:integer[]"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:       o.ID().Google(),
		TruckID:  o.TruckID().Google(),
		Code:     o.Code(),
		Customer: o.Customer(),
		Pallets:  o.Pallets(),
		Status:   int(o.Status()),
		Slots:    pq.Int64Array{},
	}

	if c, ok := o.Coordinate(); ok {
		lat, lng := c.Lat(), c.Lng()
		dto.Lat, dto.Lng = &lat, &lng
	}
	if tripID := o.TripID(); tripID != nil {
		raw := tripID.Google()
		dto.TripID = &raw
	}
	for _, s := range o.Slots() {
		dto.Slots = append(dto.Slots, int64(s))
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	truckID, err := kernel.UUIDFromGoogle(dto.TruckID)
	if err != nil {
		return nil, err
	}

	var coordinate *kernel.Coordinate
	if dto.Lat != nil && dto.Lng != nil {
		c, coordErr := kernel.NewCoordinate(*dto.Lat, *dto.Lng)
		if coordErr != nil {
			return nil, coordErr
		}
		coordinate = &c
	}

	var tripID *kernel.UUID
	if dto.TripID != nil {
		tID, tripErr := kernel.UUIDFromGoogle(*dto.TripID)
		if tripErr != nil {
			return nil, tripErr
		}
		tripID = &tID
	}

	var slots []int
	for _, s := range dto.Slots {
		slots = append(slots, int(s))
	}

	return order.RestoreOrder(
		id,
		truckID,
		dto.Code,
		dto.Customer,
		dto.Pallets,
		coordinate,
		order.Status(dto.Status),
		tripID,
		slots,
	)
}
