package commands

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrNoOrderLines       = errors.New("order must contain at least one item")
	ErrDuplicateOrderLine = errors.New("product appears more than once")
)

// OrderLine is one requested product and quantity. Name, price and image are taken
// from the catalog when the order is placed.
type OrderLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// PlaceOrderCommand converts a buyer's request into an order. Stock for every line is
// reserved in the same transaction that inserts the order.
//
// Example:
//
//	address, _ := order.NewShippingAddress("Jane Doe", "1 Main St", "Austin", "TX", "73301", nil)
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), userID,
//	    []OrderLine{{ProductID: mugID, Quantity: 2}}, address, "card")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if _, err := NewPlaceOrderCommandHandler(uowFactory).Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	userID        kernel.UUID
	lines         []OrderLine
	address       order.ShippingAddress
	paymentMethod string

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(
	orderID, userID kernel.UUID,
	lines []OrderLine,
	address order.ShippingAddress,
	paymentMethod string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setLines(lines),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID                   { return c.orderID }
func (c PlaceOrderCommand) UserID() kernel.UUID                    { return c.userID }
func (c PlaceOrderCommand) ShippingAddress() order.ShippingAddress { return c.address }
func (c PlaceOrderCommand) PaymentMethod() string                  { return c.paymentMethod }

// Lines returns a copy of the requested lines.
func (c PlaceOrderCommand) Lines() []OrderLine {
	lines := make([]OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *PlaceOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *PlaceOrderCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	c.userID = id
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("items", ErrNoOrderLines)
	}

	seen := make(map[kernel.UUID]struct{}, len(lines))
	var lineErrs []error
	for i, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			lineErrs = append(lineErrs, errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("items[%d].productId", i), err))
			continue
		}
		if line.Quantity <= 0 {
			lineErrs = append(lineErrs,
				errs.NewValueIsOutOfRangeError(fmt.Sprintf("items[%d].quantity", i), line.Quantity, 1, "unbounded"))
		}
		if _, dup := seen[line.ProductID]; dup {
			lineErrs = append(lineErrs, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d].productId", i),
				fmt.Errorf("%w: %s", ErrDuplicateOrderLine, line.ProductID)))
		}
		seen[line.ProductID] = struct{}{}
	}
	if err := errors.Join(lineErrs...); err != nil {
		return err
	}

	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(method string) error {
	if strings.TrimSpace(method) == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	c.paymentMethod = method
	return nil
}
