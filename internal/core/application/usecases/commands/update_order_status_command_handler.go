package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler applies administrative status overrides. Every change
// appends a history entry; a blank description falls back to the status default.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{uowFactory: uowFactory}
}

func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, command UpdateOrderStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, command.OrderID(), func(o *order.Order) error {
		_, err := o.UpdateStatus(command.Status(), command.Description(), time.Now())
		return err
	})
}
