package truck

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/pkg/errs"
)

var (
	// ErrTruckIsNotConstructed is returned when a Truck was not built by NewTruck or RestoreTruck.
	ErrTruckIsNotConstructed = errors.New("Truck must be created via NewTruck constructor")

	// ErrTripNotFound is returned when a trip id does not belong to the truck.
	ErrTripNotFound = errors.New("trip not found")

	// ErrTripIsNotEmpty is returned when removing a trip that still holds pallets.
	ErrTripIsNotEmpty = errors.New("trip is not empty")

	// ErrLastTrip is returned when removing the only trip of a truck.
	ErrLastTrip = errors.New("truck must keep at least one trip")
)

// Truck is the planning aggregate for one vehicle on one delivery date. It owns
// its trips; orders reference the truck by id and live in their own aggregate.
//
// Invariants:
//   - at least one trip exists
//   - trip sequences are 0..len(trips)-1 in order
type Truck struct {
	id    kernel.UUID
	name  string
	date  time.Time
	trips []*Trip

	isConstructed bool
}

// NewTruck creates a truck with its first, empty trip.
//
// Parameters:
//   - id: truck identifier
//   - name: display name or plate, e.g. "Truck 3"
//   - date: delivery date; the time of day is dropped
//
// Returns:
//   - *Truck: the truck with trip sequence 0
//   - error: validation failures, joined
//
// Example:
//
//	tr, err := truck.NewTruck(kernel.NewUUID(), "Truck 3", time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC))
//	first := tr.Trips()[0]
func NewTruck(id kernel.UUID, name string, date time.Time) (*Truck, error) {
	t := &Truck{isConstructed: true}

	if err := errors.Join(t.setID(id), t.setName(name), t.setDate(date)); err != nil {
		return nil, err
	}

	if _, err := t.AddTrip(); err != nil {
		return nil, err
	}
	return t, nil
}

// RestoreTruck rebuilds a truck from persistence. Trips may arrive in any order;
// they are sorted by sequence and the sequence must be gap free.
func RestoreTruck(id kernel.UUID, name string, date time.Time, trips []*Trip) (*Truck, error) {
	t := &Truck{isConstructed: true}

	if err := errors.Join(t.setID(id), t.setName(name), t.setDate(date)); err != nil {
		return nil, err
	}
	if len(trips) == 0 {
		return nil, errs.NewValueIsRequiredError("trips")
	}

	ordered := make([]*Trip, len(trips))
	for _, trip := range trips {
		if err := trip.Validate(); err != nil {
			return nil, err
		}
		seq := trip.Sequence()
		if seq >= len(trips) || ordered[seq] != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("trips", fmt.Errorf("unexpected sequence %d", seq))
		}
		ordered[seq] = trip
	}
	t.trips = ordered
	return t, nil
}

func (t *Truck) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTruckIsNotConstructed
	}
	return nil
}

func (t *Truck) IsEqual(other *Truck) bool {
	return other != nil && t.id.IsEqual(other.id)
}

func (t *Truck) ID() kernel.UUID {
	return t.id
}

func (t *Truck) Name() string {
	return t.name
}

// Date returns the delivery date at UTC midnight.
func (t *Truck) Date() time.Time {
	return t.date
}

// Trips returns the trips in sequence order. The slice is a copy; the trips are not.
func (t *Truck) Trips() []*Trip {
	out := make([]*Trip, len(t.trips))
	copy(out, t.trips)
	return out
}

// Trip looks a trip up by id.
func (t *Truck) Trip(id kernel.UUID) (*Trip, error) {
	for _, trip := range t.trips {
		if trip.ID().IsEqual(id) {
			return trip, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrTripNotFound, id)
}

// AddTrip appends an empty trip with the next sequence number.
func (t *Truck) AddTrip() (*Trip, error) {
	trip, err := NewTrip(kernel.NewUUID(), len(t.trips))
	if err != nil {
		return nil, err
	}
	t.trips = append(t.trips, trip)
	return trip, nil
}

// RemoveTrip deletes an empty trip and renumbers the remaining trips so their
// sequences stay 0..n-1. Occupied trips are refused; the caller evicts first.
func (t *Truck) RemoveTrip(id kernel.UUID) error {
	pos := -1
	for i, trip := range t.trips {
		if trip.ID().IsEqual(id) {
			pos = i
			break
		}
	}
	if pos < 0 {
		return fmt.Errorf("%w: %s", ErrTripNotFound, id)
	}
	if len(t.trips) == 1 {
		return ErrLastTrip
	}
	if occupied := t.trips[pos].OccupiedIndices(); len(occupied) > 0 {
		return fmt.Errorf("%w: %d slots occupied", ErrTripIsNotEmpty, len(occupied))
	}

	t.trips = append(t.trips[:pos], t.trips[pos+1:]...)
	for seq, trip := range t.trips[pos:] {
		trip.sequence = pos + seq
	}
	return nil
}

func (t *Truck) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Truck) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	t.name = name
	return nil
}

func (t *Truck) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	t.date = DeliveryDay(date)
	return nil
}

// DeliveryDay is the calendar day of date in date's own location, stored as UTC
// midnight. Trucks, the planning board and the warm-up job all key on it, so
// time.Now() on a server east of UTC still selects the local day.
func DeliveryDay(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
