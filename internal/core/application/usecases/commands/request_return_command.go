package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrRequestReturnCommandIsNotConstructed = errors.New(
	"RequestReturnCommand must be created via NewRequestReturnCommand constructor",
)

// RequestReturnCommand opens a return for one product of the buyer's own order.
type RequestReturnCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	userID    kernel.UUID
	productID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRequestReturnCommand(orderID, userID, productID kernel.UUID) (RequestReturnCommand, error) {
	var userErr, productErr error
	if err := userID.Validate(); err != nil {
		userErr = errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	if err := productID.Validate(); err != nil {
		productErr = errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	if err := errors.Join(orderID.Validate(), userErr, productErr); err != nil {
		return RequestReturnCommand{}, err
	}

	return RequestReturnCommand{
		orderID:   orderID,
		userID:    userID,
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RequestReturnCommand) Validate() error {
	return c.guard.Validate(ErrRequestReturnCommandIsNotConstructed)
}

func (c RequestReturnCommand) OrderID() kernel.UUID   { return c.orderID }
func (c RequestReturnCommand) UserID() kernel.UUID    { return c.userID }
func (c RequestReturnCommand) ProductID() kernel.UUID { return c.productID }
