package services

import (
	"errors"
	"fmt"

	"planner/internal/core/domain/model/order"
	"planner/internal/core/domain/model/truck"
)

var (
	// ErrInsufficientContiguousSpace is returned when a placement cannot find the
	// requested number of slots from its start. Nothing is mutated.
	ErrInsufficientContiguousSpace = errors.New("insufficient contiguous space")

	// ErrOrderNotFound is returned when an order is not the one the caller
	// claims it to be, such as evicting a slot held by another order.
	ErrOrderNotFound = errors.New("order not found")
)

const unlimited = -1

// PalletPlacer allocates contiguous runs of enabled slots to orders.
//
// A scan starts at a slot and walks towards the back of the trailer:
//   - disabled slots are skipped; they neither count nor break the run
//   - an occupied slot ends the run
//   - a slot that would overfill its row ends the run; the row count includes
//     slots already taken plus slots accepted earlier in the same scan
//
// Place and MaxPlaceable share that scan, so MaxPlaceable(trip, i) is always the
// largest count Place(trip, o, i, count) accepts.
//
// Example usage:
//
//	placer := services.NewPalletPlacer()
//	if n := placer.MaxPlaceable(trip, 3); n < o.Pallets() {
//	    // warn the dispatcher before trying
//	}
//	slots, err := placer.Place(trip, o, 3, o.Pallets())
//	if errors.Is(err, services.ErrInsufficientContiguousSpace) {
//	    // nothing changed
//	}
type PalletPlacer struct{}

func NewPalletPlacer() PalletPlacer {
	return PalletPlacer{}
}

// Place puts count pallets of o into trip starting at startIndex.
//
// Parameters:
//   - trip: trip to place into
//   - o: unplanned order
//   - startIndex: first slot to consider, 0..NumSlots-1
//   - count: number of slots to occupy, at least 1
//
// Returns:
//   - []int: the accepted indices in ascending order
//   - error: ErrInsufficientContiguousSpace, order.ErrOrderAlreadyPlaced or a validation error.
//     On error neither trip nor order changes.
func (p PalletPlacer) Place(trip *truck.Trip, o *order.Order, startIndex int, count int) ([]int, error) {
	if err := errors.Join(trip.Validate(), o.Validate()); err != nil {
		return nil, err
	}
	if err := truck.ValidateIndex(startIndex); err != nil {
		return nil, err
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: count %d is below 1", ErrInsufficientContiguousSpace, count)
	}
	if o.IsPlaced() {
		return nil, order.ErrOrderAlreadyPlaced
	}

	run := scanRun(trip, startIndex, count)
	if len(run) < count {
		return nil, fmt.Errorf("%w: %d of %d slots free from slot %d",
			ErrInsufficientContiguousSpace, len(run), count, startIndex)
	}

	if err := trip.Occupy(o.ID(), run); err != nil {
		return nil, err
	}
	if err := o.Place(trip.ID(), run); err != nil {
		for _, i := range run {
			_, _ = trip.Clear(i)
		}
		return nil, err
	}
	return run, nil
}

// MaxPlaceable returns how many slots a placement from startIndex could take.
// It never mutates trip. An invalid trip or start index yields 0.
func (p PalletPlacer) MaxPlaceable(trip *truck.Trip, startIndex int) int {
	if trip.Validate() != nil || truck.ValidateIndex(startIndex) != nil {
		return 0
	}
	return len(scanRun(trip, startIndex, unlimited))
}

// Evict frees one slot held by o. When it was the order's last slot the order
// goes back to Unplanned and loses its trip.
//
// Returns:
//   - error: truck.ErrSlotIsEmpty, ErrOrderNotFound when o is not the occupant,
//     or an index validation error
func (p PalletPlacer) Evict(trip *truck.Trip, o *order.Order, slotIndex int) error {
	if err := errors.Join(trip.Validate(), o.Validate()); err != nil {
		return err
	}

	slot, err := trip.Slot(slotIndex)
	if err != nil {
		return err
	}
	if !slot.IsOccupied() {
		return fmt.Errorf("%w: %d", truck.ErrSlotIsEmpty, slotIndex)
	}
	if !slot.IsOccupiedBy(o.ID()) || !o.IsPlacedIn(trip.ID()) {
		return fmt.Errorf("%w: %s does not occupy slot %d", ErrOrderNotFound, o.ID(), slotIndex)
	}

	if err = o.ReleaseSlot(slotIndex); err != nil {
		return err
	}
	if _, err = trip.Clear(slotIndex); err != nil {
		return err
	}
	return nil
}

// scanRun is the single accept/skip/stop decision shared by Place and MaxPlaceable.
// limit < 0 scans until blocked.
func scanRun(trip *truck.Trip, start int, limit int) []int {
	var run []int
	acceptedInRow := make(map[int]int)

	for i := start; i < truck.NumSlots; i++ {
		if limit >= 0 && len(run) >= limit {
			break
		}
		if trip.IsDisabled(i) {
			continue
		}
		if trip.IsOccupied(i) {
			break
		}
		row := truck.RowOf(i)
		if trip.OccupiedInRow(row)+acceptedInRow[row] >= trip.RowCapacity(row) {
			break
		}
		acceptedInRow[row]++
		run = append(run, i)
	}
	return run
}
