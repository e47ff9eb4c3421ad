// Package productrepo persists the catalog and implements the inventory ledger.
// Stock is only ever changed by single conditional UPDATE statements, never by a
// read-modify-write, so concurrent reservations cannot oversell a product.
package productrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for catalog entries.
type ProductDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Price     int64     `gorm:"not null;check:chk_products_price,price >= 0"`
	Image     string
	Stock     int       `gorm:"not null;check:chk_products_stock,stock >= 0"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:        p.ID().Bytes(),
		Name:      p.Name(),
		Price:     p.Price().Cents(),
		Image:     p.Image(),
		Stock:     p.Stock(),
		CreatedAt: p.CreatedAt(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return product.NewProduct(id, dto.Name, kernel.Money(dto.Price), dto.Image, dto.Stock, dto.CreatedAt)
}
