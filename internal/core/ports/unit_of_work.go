package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for every command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a transaction boundary spanning the truck and order repositories.
// Repositories obtained after Begin run inside the transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit fails when no transaction is active.
	Commit(ctx context.Context) error

	// Rollback fails when no transaction is active; callers defer it and ignore the error.
	Rollback(ctx context.Context) error

	TruckRepository() TruckRepository

	OrderRepository() OrderRepository
}
