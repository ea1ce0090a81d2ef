// Package queries contains read operations for retrieving planning state.
// Queries return read models shaped for the planning board and never persist.
package queries

import (
	"planner/internal/core/ports"
)

type (
	// Repositories gives read access to aggregates outside of a transaction.
	Repositories interface {
		TruckRepository() ports.TruckRepository
		OrderRepository() ports.OrderRepository
	}

	RepositoriesFactory interface {
		Create() Repositories
	}
)
