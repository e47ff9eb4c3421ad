package order

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// StatusChanged is recorded whenever the order status changes.
type StatusChanged struct {
	OrderID    kernel.UUID
	UserID     kernel.UUID
	From       Status
	To         Status
	OccurredAt time.Time
}
