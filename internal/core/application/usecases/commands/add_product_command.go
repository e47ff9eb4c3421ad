package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrAddProductCommandIsNotConstructed = errors.New(
	"AddProductCommand must be created via NewAddProductCommand constructor",
)

// AddProductCommand seeds the catalog with a product and its opening stock.
//
// Example:
//
//	cmd, err := NewAddProductCommand(kernel.NewUUID(), "Mug", kernel.Money(1250), "mug.png", 20)
//	if err != nil {
//	    return err
//	}
//	err = NewAddProductCommandHandler(uowFactory).Handle(ctx, cmd)
type AddProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	name      string
	price     kernel.Money
	image     string
	stock     int

	guard guard.ConstructorGuard
}

// NewAddProductCommand validates the product data. Price and stock must not be negative.
func NewAddProductCommand(
	productID kernel.UUID,
	name string,
	price kernel.Money,
	image string,
	stock int,
) (AddProductCommand, error) {
	cmd := AddProductCommand{
		image: image,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setStock(stock),
	); err != nil {
		return AddProductCommand{}, err
	}

	return cmd, nil
}

func (c AddProductCommand) Validate() error {
	return c.guard.Validate(ErrAddProductCommandIsNotConstructed)
}

func (c AddProductCommand) ProductID() kernel.UUID { return c.productID }
func (c AddProductCommand) Name() string           { return c.name }
func (c AddProductCommand) Price() kernel.Money    { return c.price }
func (c AddProductCommand) Image() string          { return c.image }
func (c AddProductCommand) Stock() int             { return c.stock }

func (c *AddProductCommand) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.productID = id
	return nil
}

func (c *AddProductCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = strings.TrimSpace(name)
	return nil
}

func (c *AddProductCommand) setPrice(price kernel.Money) error {
	if price < 0 {
		return errs.NewValueIsOutOfRangeError("price", price, 0, "unbounded")
	}
	c.price = price
	return nil
}

func (c *AddProductCommand) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsOutOfRangeError("stock", stock, 0, "unbounded")
	}
	c.stock = stock
	return nil
}
