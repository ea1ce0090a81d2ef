// Package order holds the Order aggregate: one customer delivery of a number of
// pallets, owned by a truck and optionally placed into one of its trips.
//
// Key business rules:
//   - An order has no slots, no trip and status Unplanned, or it has a
//     non-empty ascending slot list, a trip and status Planned. Nothing in between.
//   - Slots are written as a whole by placement and released one at a time by eviction.
//   - Releasing the last slot returns the order to Unplanned.
//
// Slot geometry and capacity are not checked here; they belong to the truck package
// and the pallet placer.
package order
