package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
)

// CartRepository is the minimal cart collaborator: placement only needs to clear it.
type CartRepository interface {
	// AddItem adds quantity of productID to the user's cart, summing with an existing line.
	AddItem(ctx context.Context, userID, productID kernel.UUID, quantity int) error

	// Clear removes every line of the user's cart.
	Clear(ctx context.Context, userID kernel.UUID) error
}
