package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrApproveReturnCommandIsNotConstructed = errors.New(
	"ApproveReturnCommand must be created via NewApproveReturnCommand constructor",
)

// ApproveReturnCommand approves the return of one product of an order.
type ApproveReturnCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	productID kernel.UUID

	guard guard.ConstructorGuard
}

func NewApproveReturnCommand(orderID, productID kernel.UUID) (ApproveReturnCommand, error) {
	var productErr error
	if err := productID.Validate(); err != nil {
		productErr = errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	if err := errors.Join(orderID.Validate(), productErr); err != nil {
		return ApproveReturnCommand{}, err
	}

	return ApproveReturnCommand{
		orderID:   orderID,
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ApproveReturnCommand) Validate() error {
	return c.guard.Validate(ErrApproveReturnCommandIsNotConstructed)
}

func (c ApproveReturnCommand) OrderID() kernel.UUID   { return c.orderID }
func (c ApproveReturnCommand) ProductID() kernel.UUID { return c.productID }
