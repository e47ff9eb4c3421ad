package productrepo

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Add saves a new product.
func (r *GormProductRepository) Add(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStorageError("products.add", err)
	}
	return nil
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, errs.NewStorageError("products.get", err)
	}

	return toDomain(dto)
}

// GormInventoryLedger implements InventoryLedger with conditional updates on the
// products table.
type GormInventoryLedger struct {
	db *gorm.DB
}

// NewGormInventoryLedger creates a new GORM inventory ledger.
func NewGormInventoryLedger(db *gorm.DB) *GormInventoryLedger {
	return &GormInventoryLedger{db: db}
}

// ReserveStock runs
//
//	UPDATE products SET stock = stock - q WHERE id = ? AND stock >= q
//
// and fails with product.ErrInsufficientStock when no row matched.
func (l *GormInventoryLedger) ReserveStock(ctx context.Context, productID kernel.UUID, quantity int) error {
	if err := validQuantity(quantity); err != nil {
		return err
	}

	result := l.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ? AND stock >= ?", productID.Bytes(), quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return errs.NewStorageError("products.reserve_stock", result.Error)
	}
	if result.RowsAffected == 0 {
		return product.NewInsufficientStockError(productID, quantity)
	}
	return nil
}

// RestoreStock increments stock by quantity.
func (l *GormInventoryLedger) RestoreStock(ctx context.Context, productID kernel.UUID, quantity int) error {
	if err := validQuantity(quantity); err != nil {
		return err
	}

	result := l.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", productID.Bytes()).
		UpdateColumn("stock", gorm.Expr("stock + ?", quantity))
	if result.Error != nil {
		return errs.NewStorageError("products.restore_stock", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", productID.String())
	}
	return nil
}

func validQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return nil
}
