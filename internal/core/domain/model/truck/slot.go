package truck

import (
	"errors"
	"fmt"

	"planner/internal/core/domain/model/kernel"
)

// Slot is one pallet position of a trip. It is a value; Trip owns the only
// mutable copy.
type Slot struct {
	index    int
	shape    Shape
	occupant *kernel.UUID
}

// RestoreSlot rebuilds a slot from persistence. Trip-level rules such as the
// disabled middle are checked by RestoreTrip.
//
// Parameters:
//   - index: position in the trailer, 0..NumSlots-1
//   - shape: Square or Rect; Rect is rejected on a row middle
//   - occupant: id of the order holding the slot, or nil
func RestoreSlot(index int, shape Shape, occupant *kernel.UUID) (Slot, error) {
	if err := errors.Join(ValidateIndex(index), shape.Validate()); err != nil {
		return Slot{}, err
	}
	if shape == Rect && IsMiddle(index) {
		return Slot{}, fmt.Errorf("%w: slot %d is a row middle", ErrInvalidShapeChange, index)
	}

	s := Slot{index: index, shape: shape}
	if occupant != nil {
		if err := occupant.Validate(); err != nil {
			return Slot{}, err
		}
		id := *occupant
		s.occupant = &id
	}
	return s, nil
}

func (s Slot) Index() int {
	return s.index
}

func (s Slot) Shape() Shape {
	return s.shape
}

// Occupant returns the id of the order holding the slot.
func (s Slot) Occupant() (kernel.UUID, bool) {
	if s.occupant == nil {
		return kernel.UUID{}, false
	}
	return *s.occupant, true
}

func (s Slot) IsOccupied() bool {
	return s.occupant != nil
}

func (s Slot) IsOccupiedBy(orderID kernel.UUID) bool {
	return s.occupant != nil && s.occupant.IsEqual(orderID)
}

// IsEqual compares index, shape and occupant.
func (s Slot) IsEqual(other Slot) bool {
	if s.index != other.index || s.shape != other.shape {
		return false
	}
	a, okA := s.Occupant()
	b, okB := other.Occupant()
	return okA == okB && a.IsEqual(b)
}
