package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes so their domain
// events can be published once Commit succeeds.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction and then publishes the events of the
	// tracked aggregates.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// Repositories bound to the current transaction.
	OrderRepository() OrderRepository
	ProductRepository() ProductRepository
	InventoryLedger() InventoryLedger
	StationRepository() StationRepository
	AgentRepository() AgentRepository
	CartRepository() CartRepository
	RestockRepository() RestockRepository
}
