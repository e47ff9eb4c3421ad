// Package product is the minimal catalog model used by order placement: name, price,
// image and stock. Stock is only changed through the inventory ledger, never by a
// read-modify-write on this type.
package product

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrInsufficientStock is returned when a conditional stock decrement matches no
	// product with enough stock.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Product is a catalog entry.
type Product struct {
	id            kernel.UUID
	name          string
	price         kernel.Money
	image         string
	stock         int
	createdAt     time.Time
	isConstructed bool
}

// NewProduct creates a product. Price and stock must not be negative.
//
// Example:
//
//	p, err := product.NewProduct(kernel.NewUUID(), "Mug", kernel.Money(1250), "mug.png", 40, time.Now())
func NewProduct(id kernel.UUID, name string, price kernel.Money, image string, stock int, now time.Time) (*Product, error) {
	var nameErr, priceErr, stockErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if price < 0 {
		priceErr = errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is negative", price))
	}
	if stock < 0 {
		stockErr = errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock))
	}
	if err := errors.Join(id.Validate(), nameErr, priceErr, stockErr); err != nil {
		return nil, err
	}

	return &Product{
		id:            id,
		name:          name,
		price:         price,
		image:         image,
		stock:         stock,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// Validate ensures the product was built through NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID      { return p.id }
func (p *Product) Name() string         { return p.name }
func (p *Product) Price() kernel.Money  { return p.price }
func (p *Product) Image() string        { return p.image }
func (p *Product) Stock() int           { return p.stock }
func (p *Product) CreatedAt() time.Time { return p.createdAt }

// NewInsufficientStockError reports that quantity units of productID could not be
// reserved.
func NewInsufficientStockError(productID kernel.UUID, quantity int) error {
	return errs.NewValueIsInvalidErrorWithCause("stock",
		fmt.Errorf("%w: product %s, quantity %d", ErrInsufficientStock, productID, quantity))
}
