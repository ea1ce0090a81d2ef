// Package kernel holds the value objects shared by every planner aggregate.
//
//   - UUID identifies trucks, trips and orders.
//   - Coordinate is a validated WGS84 position with a great-circle distance.
//
// Both are immutable; their zero values fail Validate and must be built through
// the constructors.
package kernel
