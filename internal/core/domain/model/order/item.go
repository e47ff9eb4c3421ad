package order

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Item is one order line, priced from the catalog at placement time.
type Item struct {
	productID kernel.UUID
	name      string
	price     kernel.Money
	quantity  int
	image     string
}

// NewItem creates an order line. Quantity must be positive and price non-negative.
//
// Example:
//
//	item, err := order.NewItem(p.ID(), p.Name(), p.Price(), 2, p.Image())
func NewItem(productID kernel.UUID, name string, price kernel.Money, quantity int, image string) (Item, error) {
	var idErr, nameErr, priceErr, qtyErr error
	if err := productID.Validate(); err != nil {
		idErr = errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("item name")
	}
	if price < 0 {
		priceErr = errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is negative", price))
	}
	if quantity <= 0 {
		qtyErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if err := errors.Join(idErr, nameErr, priceErr, qtyErr); err != nil {
		return Item{}, err
	}

	return Item{
		productID: productID,
		name:      name,
		price:     price,
		quantity:  quantity,
		image:     image,
	}, nil
}

func (i Item) ProductID() kernel.UUID { return i.productID }
func (i Item) Name() string           { return i.name }
func (i Item) Price() kernel.Money    { return i.price }
func (i Item) Quantity() int          { return i.quantity }
func (i Item) Image() string          { return i.image }

// LineTotal returns price times quantity.
func (i Item) LineTotal() kernel.Money {
	return i.price.Times(i.quantity)
}
