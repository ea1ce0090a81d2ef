package truck

import "planner/internal/pkg/errs"

const (
	// NumSlots is the number of pallet positions in a trailer.
	NumSlots = 33
	// SlotsPerRow is the trailer width in pallets.
	SlotsPerRow = 3

	// RowCapacitySquare is the capacity of a row without Rect slots.
	RowCapacitySquare = 3
	// RowCapacityRect is the capacity of a row holding at least one Rect slot.
	RowCapacityRect = 2

	middlePosition = 1
)

// NumRows is the number of rows, counting a trailing partial row.
const NumRows = (NumSlots + SlotsPerRow - 1) / SlotsPerRow

// RowOf returns the row an index belongs to.
func RowOf(index int) int {
	return index / SlotsPerRow
}

// PositionInRow returns 0 or 2 for edges and 1 for the middle.
func PositionInRow(index int) int {
	return index % SlotsPerRow
}

// IsMiddle reports whether index is the middle position of its row.
func IsMiddle(index int) bool {
	return PositionInRow(index) == middlePosition
}

// SlotsInRow returns the indices of row r, clipped at the end of the trailer.
func SlotsInRow(row int) []int {
	if row < 0 || row >= NumRows {
		return nil
	}
	first := row * SlotsPerRow
	last := min(first+SlotsPerRow-1, NumSlots-1)

	indices := make([]int, 0, SlotsPerRow)
	for i := first; i <= last; i++ {
		indices = append(indices, i)
	}
	return indices
}

// MiddleOfRow returns the middle index of row r and whether the row has one.
func MiddleOfRow(row int) (int, bool) {
	m := row*SlotsPerRow + middlePosition
	if row < 0 || row >= NumRows || m >= NumSlots {
		return 0, false
	}
	return m, true
}

// ValidateIndex checks 0 <= index < NumSlots.
func ValidateIndex(index int) error {
	if index < 0 || index >= NumSlots {
		return errs.NewValueIsOutOfRangeError("slotIndex", index, 0, NumSlots-1)
	}
	return nil
}
