package ports

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// EventPublisher delivers order status events after the transaction that produced
// them has committed. Delivery is at most once; a failed publish is logged by the
// caller and does not undo the commit.
type EventPublisher interface {
	Publish(ctx context.Context, events []order.StatusChanged) error
}
