// Package services holds the planning operations that span the Truck and Order
// aggregates:
//   - PalletPlacer places an order into a trip, estimates free runs and evicts slots
//   - DepthRouteBuilder derives a trip's unload sequence from pallet depth
//   - RouteOptimizer builds a nearest-neighbour route improved by 2-opt
//
// The services are stateless and synchronous. Callers load and persist the
// aggregates; nothing here performs I/O.
package services
