// Package truckrepo maps the Truck aggregate onto the trucks, trips and slots tables.
package truckrepo

import (
	"time"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/truck"

	"github.com/google/uuid"
)

// TruckDTO is a row of the trucks table. A truck owns its trips.
type TruckDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	DeliveryDate time.Time `gorm:"type:date;not null;index"`
	Trips        []TripDTO `gorm:"foreignKey:TruckID;constraint:OnDelete:CASCADE"`
}

func (TruckDTO) TableName() string {
	return "trucks"
}

// TripDTO is a row of the trips table. Sequence is unique per truck.
type TripDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	TruckID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_trips_truck_sequence"`
	Sequence int       `gorm:"type:int;not null;uniqueIndex:idx_trips_truck_sequence"`
	Slots    []SlotDTO `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
}

func (TripDTO) TableName() string {
	return "trips"
}

// SlotDTO is a row of the slots table keyed by (trip_id, slot_index).
type SlotDTO struct {
	TripID  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Index   int        `gorm:"column:slot_index;type:smallint;primaryKey;autoIncrement:false"`
	Shape   string     `gorm:"type:varchar(8);not null;default:square"`
	OrderID *uuid.UUID `gorm:"type:uuid;index"`
}

func (SlotDTO) TableName() string {
	return "slots"
}

func fromDomain(aggregate *truck.Truck) TruckDTO {
	truckID := aggregate.ID().Google()
	trips := make([]TripDTO, 0, len(aggregate.Trips()))

	for _, trip := range aggregate.Trips() {
		trips = append(trips, tripFromDomain(truckID, trip))
	}

	return TruckDTO{
		ID:           truckID,
		Name:         aggregate.Name(),
		DeliveryDate: aggregate.Date(),
		Trips:        trips,
	}
}

func tripFromDomain(truckID uuid.UUID, trip *truck.Trip) TripDTO {
	tripID := trip.ID().Google()
	slots := make([]SlotDTO, 0, truck.NumSlots)

	for _, s := range trip.Slots() {
		var orderID *uuid.UUID
		if occupant, ok := s.Occupant(); ok {
			raw := occupant.Google()
			orderID = &raw
		}

		slots = append(slots, SlotDTO{
			TripID:  tripID,
			Index:   s.Index(),
			Shape:   s.Shape().String(),
			OrderID: orderID,
		})
	}

	return TripDTO{
		ID:       tripID,
		TruckID:  truckID,
		Sequence: trip.Sequence(),
		Slots:    slots,
	}
}

func toDomain(dto TruckDTO) (*truck.Truck, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	trips := make([]*truck.Trip, 0, len(dto.Trips))
	for _, tripDTO := range dto.Trips {
		trip, tripErr := tripToDomain(tripDTO)
		if tripErr != nil {
			return nil, tripErr
		}
		trips = append(trips, trip)
	}

	return truck.RestoreTruck(id, dto.Name, dto.DeliveryDate, trips)
}

// tripToDomain tolerates missing slot rows; they restore as empty Square slots.
func tripToDomain(dto TripDTO) (*truck.Trip, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	slots := make([]truck.Slot, 0, len(dto.Slots))
	for _, slotDTO := range dto.Slots {
		shape, shapeErr := truck.ParseShape(slotDTO.Shape)
		if shapeErr != nil {
			return nil, shapeErr
		}

		var occupant *kernel.UUID
		if slotDTO.OrderID != nil {
			oID, idErr := kernel.UUIDFromGoogle(*slotDTO.OrderID)
			if idErr != nil {
				return nil, idErr
			}
			occupant = &oID
		}

		slot, slotErr := truck.RestoreSlot(slotDTO.Index, shape, occupant)
		if slotErr != nil {
			return nil, slotErr
		}
		slots = append(slots, slot)
	}

	return truck.RestoreTrip(id, dto.Sequence, slots)
}
