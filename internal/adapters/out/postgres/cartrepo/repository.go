// Package cartrepo persists shopping carts as one row per user and product.
package cartrepo

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartItemDTO is one cart line.
type CartItemDTO struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int       `gorm:"not null;check:chk_cart_items_quantity,quantity > 0"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for cart lines.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// AddItem upserts the line, adding quantity to an existing one.
func (r *GormCartRepository) AddItem(ctx context.Context, userID, productID kernel.UUID, quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	dto := CartItemDTO{
		UserID:    userID.Bytes(),
		ProductID: productID.Bytes(),
		Quantity:  quantity,
		UpdatedAt: time.Now().UTC(),
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity":   gorm.Expr("cart_items.quantity + excluded.quantity"),
			"updated_at": gorm.Expr("excluded.updated_at"),
		}),
	}).Create(&dto).Error
	if err != nil {
		return errs.NewStorageError("cart.add_item", err)
	}
	return nil
}

// Clear removes every line of the user's cart. Clearing an empty cart succeeds.
func (r *GormCartRepository) Clear(ctx context.Context, userID kernel.UUID) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID.Bytes()).
		Delete(&CartItemDTO{}).Error
	if err != nil {
		return errs.NewStorageError("cart.clear", err)
	}
	return nil
}
