package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand is the administrative status override. Only the coarse
// statuses order_placed, shipped, out_for_delivery, delivered and cancelled are accepted.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	status      order.Status
	description string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand fails with order.ErrInvalidStatus for any other status.
func NewUpdateOrderStatusCommand(orderID kernel.UUID, status, description string) (UpdateOrderStatusCommand, error) {
	parsed, statusErr := order.ParseManualStatus(status)
	if err := errors.Join(orderID.Validate(), statusErr); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		orderID:     orderID,
		status:      parsed,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c UpdateOrderStatusCommand) Status() order.Status { return c.status }
func (c UpdateOrderStatusCommand) Description() string  { return c.description }
