package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
)

// ProductRepository is the catalog lookup used by placement.
type ProductRepository interface {
	Add(ctx context.Context, p *product.Product) error

	// Get returns errs.ErrObjectNotFound if the product does not exist.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}

// InventoryLedger owns every stock mutation.
type InventoryLedger interface {
	// ReserveStock decrements stock in one conditional update that only matches when
	// stock >= quantity. Fails with product.ErrInsufficientStock otherwise, whether the
	// product is missing or short.
	ReserveStock(ctx context.Context, productID kernel.UUID, quantity int) error

	// RestoreStock increments stock unconditionally.
	// Returns errs.ErrObjectNotFound if the product does not exist.
	RestoreStock(ctx context.Context, productID kernel.UUID, quantity int) error
}
