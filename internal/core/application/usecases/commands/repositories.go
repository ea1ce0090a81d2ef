// Package commands contains the planner's write operations. Every command is a
// validated value built by its constructor; every handler runs one unit of work.
package commands

import (
	"context"

	"planner/internal/core/ports"
)

type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	TruckRepoFactory interface {
		TruckRepository() ports.TruckRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TruckUoW is used by commands that only touch the truck aggregate.
	TruckUoW interface {
		TxManager
		TruckRepoFactory
	}

	TruckUoWFactory interface {
		Create() TruckUoW
	}

	// UoW spans trucks and orders, for placements, evictions and order intake.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   tr, err := uow.TruckRepository().Get(ctx, truckID)
	//   o, err := uow.OrderRepository().Get(ctx, orderID)
	//   // ... mutate
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		TruckRepoFactory
		OrderRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
