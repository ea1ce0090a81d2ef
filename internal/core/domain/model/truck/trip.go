package truck

import (
	"errors"
	"fmt"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/pkg/errs"
)

var (
	// ErrTripIsNotConstructed is returned when a Trip was not built by NewTrip or RestoreTrip.
	ErrTripIsNotConstructed = errors.New("Trip must be created via NewTrip constructor")

	// ErrInvalidShapeChange is returned when a slot cannot take the requested shape.
	ErrInvalidShapeChange = errors.New("invalid shape change")

	// ErrSlotIsEmpty is returned when clearing a slot nobody occupies.
	ErrSlotIsEmpty = errors.New("slot is empty")

	// ErrSlotIsOccupied is returned when occupying a slot that already holds an order.
	ErrSlotIsOccupied = errors.New("slot is occupied")

	// ErrSlotIsDisabled is returned when occupying the middle of a row that has a Rect edge.
	ErrSlotIsDisabled = errors.New("slot is disabled")

	// ErrRowCapacityExceeded is returned when an occupation would overfill a row.
	ErrRowCapacityExceeded = errors.New("row capacity exceeded")
)

// Trip is one loading run of a truck. It owns NumSlots slots and guards the
// row invariants:
//   - a Rect slot never sits on a row middle
//   - a row with a Rect edge keeps its middle empty
//   - a row never holds more pallets than RowCapacity
//
// Trip does not know about orders beyond their ids; the order side of a placement
// is kept in sync by the pallet placer.
type Trip struct {
	id       kernel.UUID
	sequence int
	slots    [NumSlots]Slot

	isConstructed bool
}

// NewTrip creates an empty trip with every slot Square.
//
// Parameters:
//   - id: trip identifier
//   - sequence: 0-based position of the trip within its truck's day
//
// Returns:
//   - *Trip: the new trip
//   - error: validation failures, joined
//
// Example:
//
//	trip, err := truck.NewTrip(kernel.NewUUID(), 0)
func NewTrip(id kernel.UUID, sequence int) (*Trip, error) {
	t := &Trip{isConstructed: true}

	if err := errors.Join(t.setID(id), t.setSequence(sequence)); err != nil {
		return nil, err
	}

	for i := range t.slots {
		t.slots[i] = Slot{index: i, shape: Square}
	}
	return t, nil
}

// RestoreTrip rebuilds a trip from persistence. Slots missing from the list stay
// empty Squares. The restored state must satisfy every row invariant.
func RestoreTrip(id kernel.UUID, sequence int, slots []Slot) (*Trip, error) {
	t, err := NewTrip(id, sequence)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(slots))
	for _, s := range slots {
		if err = errors.Join(ValidateIndex(s.index), s.shape.Validate()); err != nil {
			return nil, err
		}
		if seen[s.index] {
			return nil, errs.NewValueIsInvalidErrorWithCause("slots", fmt.Errorf("duplicate index %d", s.index))
		}
		seen[s.index] = true
		t.slots[s.index] = s
	}

	for row := range NumRows {
		if err = t.validateRow(row); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Trip) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTripIsNotConstructed
	}
	return nil
}

func (t *Trip) IsEqual(other *Trip) bool {
	return other != nil && t.id.IsEqual(other.id)
}

func (t *Trip) ID() kernel.UUID {
	return t.id
}

func (t *Trip) Sequence() int {
	return t.sequence
}

// Slot returns a copy of the slot at index.
func (t *Trip) Slot(index int) (Slot, error) {
	if err := ValidateIndex(index); err != nil {
		return Slot{}, err
	}
	return t.slots[index], nil
}

// Slots returns a copy of every slot in index order.
func (t *Trip) Slots() []Slot {
	out := make([]Slot, NumSlots)
	copy(out, t.slots[:])
	return out
}

// IsOccupied reports whether the slot holds an order. Out-of-range indices are not occupied.
func (t *Trip) IsOccupied(index int) bool {
	return ValidateIndex(index) == nil && t.slots[index].IsOccupied()
}

// HasRect reports whether any slot of row r is Rect.
func (t *Trip) HasRect(row int) bool {
	for _, i := range SlotsInRow(row) {
		if t.slots[i].shape == Rect {
			return true
		}
	}
	return false
}

// IsDisabled reports whether index is the middle of a row that has a Rect edge.
// Disabled slots are skipped by placement scans.
func (t *Trip) IsDisabled(index int) bool {
	if ValidateIndex(index) != nil || !IsMiddle(index) {
		return false
	}
	return t.HasRect(RowOf(index))
}

// RowCapacity returns RowCapacityRect for a row with a Rect slot, otherwise RowCapacitySquare.
func (t *Trip) RowCapacity(row int) int {
	if t.HasRect(row) {
		return RowCapacityRect
	}
	return min(RowCapacitySquare, len(SlotsInRow(row)))
}

// OccupiedInRow counts the occupied slots of row r.
func (t *Trip) OccupiedInRow(row int) int {
	n := 0
	for _, i := range SlotsInRow(row) {
		if t.slots[i].IsOccupied() {
			n++
		}
	}
	return n
}

// OccupiedIndices returns every occupied index in ascending order.
func (t *Trip) OccupiedIndices() []int {
	var out []int
	for i := range t.slots {
		if t.slots[i].IsOccupied() {
			out = append(out, i)
		}
	}
	return out
}

// OrderIDs returns the distinct occupants in order of their first slot.
func (t *Trip) OrderIDs() []kernel.UUID {
	var ids []kernel.UUID
	seen := make(map[kernel.UUID]bool)
	for i := range t.slots {
		id, ok := t.slots[i].Occupant()
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// SetShape changes the shape of one slot.
//
// Rules:
//   - setting the current shape is a no-op
//   - Rect is rejected on a row middle
//   - Rect is rejected while the row middle holds an order; the caller evicts first
//   - Rect is rejected on an occupied slot, shapes change only while empty
//   - Rect back to Square always succeeds and never moves an order
//
// Returns:
//   - error: ErrInvalidShapeChange wrapped with the reason, or an index/shape validation error
//
// Example:
//
//	_ = trip.SetShape(0, truck.Rect)
//	_ = trip.SetShape(2, truck.Rect)
//	trip.IsDisabled(1) // true
func (t *Trip) SetShape(index int, shape Shape) error {
	if err := errors.Join(ValidateIndex(index), shape.Validate()); err != nil {
		return err
	}

	current := t.slots[index].shape
	if current == shape {
		return nil
	}

	if shape == Rect {
		if IsMiddle(index) {
			return fmt.Errorf("%w: slot %d is a row middle", ErrInvalidShapeChange, index)
		}
		if t.slots[index].IsOccupied() {
			return fmt.Errorf("%w: slot %d is occupied", ErrInvalidShapeChange, index)
		}
		if m, ok := MiddleOfRow(RowOf(index)); ok && t.slots[m].IsOccupied() {
			return fmt.Errorf("%w: middle slot %d is occupied", ErrInvalidShapeChange, m)
		}
	}

	t.slots[index].shape = shape
	return nil
}

// Occupy assigns orderID to every index, or to none of them.
//
// Each index must be enabled and empty, and the resulting row counts must stay
// within RowCapacity. Indices are expected in ascending scan order.
func (t *Trip) Occupy(orderID kernel.UUID, indices []int) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if len(indices) == 0 {
		return errs.NewValueIsRequiredError("indices")
	}

	added := make(map[int]int)
	seen := make(map[int]bool, len(indices))
	for _, i := range indices {
		if err := ValidateIndex(i); err != nil {
			return err
		}
		switch {
		case seen[i]:
			return errs.NewValueIsInvalidErrorWithCause("indices", fmt.Errorf("duplicate index %d", i))
		case t.IsDisabled(i):
			return fmt.Errorf("%w: %d", ErrSlotIsDisabled, i)
		case t.slots[i].IsOccupied():
			return fmt.Errorf("%w: %d", ErrSlotIsOccupied, i)
		}
		seen[i] = true
		added[RowOf(i)]++
	}

	for row, n := range added {
		if t.OccupiedInRow(row)+n > t.RowCapacity(row) {
			return fmt.Errorf("%w: row %d", ErrRowCapacityExceeded, row)
		}
	}

	for _, i := range indices {
		id := orderID
		t.slots[i].occupant = &id
	}
	return nil
}

// Clear empties one slot and returns the id of the order that held it.
func (t *Trip) Clear(index int) (kernel.UUID, error) {
	if err := ValidateIndex(index); err != nil {
		return kernel.UUID{}, err
	}

	id, ok := t.slots[index].Occupant()
	if !ok {
		return kernel.UUID{}, fmt.Errorf("%w: %d", ErrSlotIsEmpty, index)
	}
	t.slots[index].occupant = nil
	return id, nil
}

func (t *Trip) validateRow(row int) error {
	if m, ok := MiddleOfRow(row); ok {
		if t.slots[m].shape == Rect {
			return errs.NewValueIsInvalidErrorWithCause("shape", fmt.Errorf("Rect on row middle %d", m))
		}
		if t.HasRect(row) && t.slots[m].IsOccupied() {
			return errs.NewValueIsInvalidErrorWithCause("slots", fmt.Errorf("disabled slot %d is occupied", m))
		}
	}
	if n, c := t.OccupiedInRow(row), t.RowCapacity(row); n > c {
		return errs.NewValueIsOutOfRangeError("rowOccupancy", n, 0, c)
	}
	return nil
}

func (t *Trip) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Trip) setSequence(sequence int) error {
	if sequence < 0 {
		return errs.NewValueIsInvalidErrorWithCause("sequence", fmt.Errorf("%d is negative", sequence))
	}
	t.sequence = sequence
	return nil
}
