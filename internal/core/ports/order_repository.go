// Package ports defines the persistence and messaging contracts the application core
// depends on. Adapters under internal/adapters implement them.
package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate with all of its children.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the whole aggregate if the stored version still equals
	// aggregate.Version(), then increments the version on both sides.
	// A stale write fails with errs.ErrVersionIsInvalid and changes nothing.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound if it does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListIDsByStatus returns up to limit order ids in status, oldest first.
	//
	// Example:
	//   ids, err := repo.ListIDsByStatus(ctx, order.WaitingForAgent, 50)
	ListIDsByStatus(ctx context.Context, status order.Status, limit int) ([]kernel.UUID, error)
}
