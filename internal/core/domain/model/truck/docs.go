// Package truck holds the Truck aggregate and the trailer model it owns.
//
// A truck is planned for one delivery date and makes one or more trips. Every trip
// has NumSlots pallet positions laid out in rows of SlotsPerRow:
//
//	row  0: [ 0][ 1][ 2]
//	row  1: [ 3][ 4][ 5]
//	...
//	row 10: [30][31][32]
//
// Position 0 and 2 of a row are edges, position 1 is the middle. An edge slot can be
// turned into a Rect slot, which takes the width of a pallet placed lengthwise. While
// any edge of a row is Rect the middle of that row is disabled and the row admits at
// most two pallets; otherwise three.
//
// The package enforces these invariants on every mutation. Choosing which slots an
// order gets is the job of the pallet placer in the domain services package.
package truck
