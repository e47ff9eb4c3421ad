package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"
)

// StartDeliveryCommandHandler moves picked_up orders to on_the_way. The journey enters
// its out_for_delivery stage at the same time.
type StartDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewStartDeliveryCommandHandler(uowFactory OrderUoWFactory) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{uowFactory: uowFactory}
}

func (h StartDeliveryCommandHandler) Handle(ctx context.Context, command StartDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, command.OrderID(), func(o *order.Order) error {
		return o.StartDelivery(command.AgentID(), time.Now())
	})
}
