package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// RequestReturnCommandHandler records return requests. An order of another buyer is
// reported as not found.
type RequestReturnCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewRequestReturnCommandHandler(uowFactory OrderUoWFactory) RequestReturnCommandHandler {
	return RequestReturnCommandHandler{uowFactory: uowFactory}
}

// Handle fails with order.ErrDuplicateReturn when the product already has a return and
// with order.ErrProductNotInOrder when the order has no such item.
func (h RequestReturnCommandHandler) Handle(ctx context.Context, command RequestReturnCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, command.OrderID(), func(o *order.Order) error {
		if !o.UserID().IsEqual(command.UserID()) {
			return errs.NewObjectNotFoundError("order", command.OrderID())
		}
		_, err := o.RequestReturn(command.ProductID(), time.Now())
		return err
	})
}
