// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"storefront/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to the catalog within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// InventoryLedgerFactory provides the stock primitives within a transaction.
	InventoryLedgerFactory interface {
		InventoryLedger() ports.InventoryLedger
	}

	// StationRepoFactory provides access to the delivery network within a transaction.
	StationRepoFactory interface {
		StationRepository() ports.StationRepository
	}

	// AgentRepoFactory provides access to delivery agents within a transaction.
	AgentRepoFactory interface {
		AgentRepository() ports.AgentRepository
	}

	// CartRepoFactory provides access to carts within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// RestockRepoFactory provides access to restock tasks within a transaction.
	RestockRepoFactory interface {
		RestockRepository() ports.RestockRepository
	}

	// CatalogUoW manages transactions for catalog seeding.
	CatalogUoW interface {
		TxManager
		ProductRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// CartUoW manages transactions for cart changes.
	CartUoW interface {
		TxManager
		ProductRepoFactory
		CartRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// NetworkUoW manages transactions for station and agent registration.
	NetworkUoW interface {
		TxManager
		StationRepoFactory
		AgentRepoFactory
	}

	// NetworkUoWFactory creates new network unit of work instances.
	NetworkUoWFactory interface {
		Create() NetworkUoW
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlacementUoW covers everything placing an order touches: the catalog, the stock,
	// the new order and the buyer's cart.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   ledger := uow.InventoryLedger()
	//   orders := uow.OrderRepository()
	//   // ... reserve every line, then add the order
	//
	//   err = uow.Commit(ctx)
	PlacementUoW interface {
		TxManager
		ProductRepoFactory
		InventoryLedgerFactory
		OrderRepoFactory
		CartRepoFactory
	}

	// PlacementUoWFactory creates new placement unit of work instances.
	PlacementUoWFactory interface {
		Create() PlacementUoW
	}

	// PlanningUoW manages transactions that route an order through the network.
	PlanningUoW interface {
		TxManager
		OrderRepoFactory
		StationRepoFactory
	}

	// PlanningUoWFactory creates new planning unit of work instances.
	PlanningUoWFactory interface {
		Create() PlanningUoW
	}

	// DeliveryUoW manages transactions across order and agent aggregates.
	// Used for commands that coordinate changes between an order and its agent.
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		AgentRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// ReturnUoW manages transactions for return approval and restocking.
	ReturnUoW interface {
		TxManager
		OrderRepoFactory
		RestockRepoFactory
		InventoryLedgerFactory
	}

	// ReturnUoWFactory creates new return unit of work instances.
	ReturnUoWFactory interface {
		Create() ReturnUoW
	}
)
