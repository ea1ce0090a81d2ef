package truckrepo

import (
	"context"
	"errors"
	"time"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/truck"
	"planner/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// slotBatchSize keeps one trip's slots in a single INSERT.
const slotBatchSize = truck.NumSlots

// GormTruckRepository implements TruckRepository using GORM.
type GormTruckRepository struct {
	db        *gorm.DB
	tracker   aggregateTracker
	forUpdate bool
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormTruckRepository(db *gorm.DB, tracker aggregateTracker) *GormTruckRepository {
	return &GormTruckRepository{
		db:      db,
		tracker: tracker,
	}
}

// ForUpdate returns a repository whose Get takes a row lock on the truck. It must
// run inside a transaction; concurrent writers of the same truck then serialize
// on that row until commit.
func (r *GormTruckRepository) ForUpdate() *GormTruckRepository {
	locked := *r
	locked.forUpdate = true
	return &locked
}

// Add inserts the truck row, then its trips and slots.
func (r *GormTruckRepository) Add(ctx context.Context, aggregate *truck.Truck) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	if err := db.Omit(clause.Associations).Create(&dto).Error; err != nil {
		return err
	}
	if err := saveTrips(db, dto.Trips); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update rewrites the truck row, inserts trips that are new and upserts every slot.
func (r *GormTruckRepository) Update(ctx context.Context, aggregate *truck.Truck) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&TruckDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":          dto.Name,
		"delivery_date": dto.DeliveryDate,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := deleteRemovedTrips(db, dto.ID, dto.Trips); err != nil {
		return err
	}
	if err := saveTrips(db, dto.Trips); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// deleteRemovedTrips drops the truck's trips that are no longer in the aggregate.
// Their slots go with them through the foreign key cascade.
func deleteRemovedTrips(db *gorm.DB, truckID uuid.UUID, trips []TripDTO) error {
	keep := make([]uuid.UUID, 0, len(trips))
	for _, trip := range trips {
		keep = append(keep, trip.ID)
	}
	return db.Where("truck_id = ? AND id NOT IN ?", truckID, keep).Delete(&TripDTO{}).Error
}

// saveTrips upserts the trips, renumbering survivors of a removal, then upserts
// all their slots in one batch keyed by (trip_id, slot_index). Trips arrive in
// ascending sequence, so each new sequence is free when its row is written.
func saveTrips(db *gorm.DB, trips []TripDTO) error {
	if len(trips) == 0 {
		return nil
	}

	slots := make([]SlotDTO, 0, len(trips)*truck.NumSlots)
	for _, trip := range trips {
		slots = append(slots, trip.Slots...)
	}

	err := db.Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"sequence"}),
		}).
		Create(&trips).Error
	if err != nil {
		return err
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "trip_id"}, {Name: "slot_index"}},
		DoUpdates: clause.AssignmentColumns([]string{"shape", "order_id"}),
	}).CreateInBatches(&slots, slotBatchSize).Error
}

func (r *GormTruckRepository) Get(ctx context.Context, id kernel.UUID) (*truck.Truck, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.preload(ctx)
	if r.forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto TruckDTO
	if err := query.First(&dto, "id = ?", id.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("truck", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByDate returns the trucks of a delivery date sorted by name.
func (r *GormTruckRepository) GetByDate(ctx context.Context, date time.Time) ([]*truck.Truck, error) {
	day := truck.DeliveryDay(date)

	var dtos []TruckDTO
	if err := r.preload(ctx).Where("delivery_date = ?", day).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	trucks := make([]*truck.Truck, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		trucks = append(trucks, t)
	}

	return trucks, nil
}

func (r *GormTruckRepository) preload(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Trips", func(db *gorm.DB) *gorm.DB { return db.Order("sequence") }).
		Preload("Trips.Slots", func(db *gorm.DB) *gorm.DB { return db.Order("slot_index") })
}
