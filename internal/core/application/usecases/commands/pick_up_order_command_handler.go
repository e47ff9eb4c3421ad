package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"
)

// PickUpOrderCommandHandler moves agent_assigned orders to picked_up. Only the agent
// holding the order may do so; anyone else gets order.ErrAgentMismatch.
type PickUpOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewPickUpOrderCommandHandler(uowFactory OrderUoWFactory) PickUpOrderCommandHandler {
	return PickUpOrderCommandHandler{uowFactory: uowFactory}
}

func (h PickUpOrderCommandHandler) Handle(ctx context.Context, command PickUpOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, command.OrderID(), func(o *order.Order) error {
		return o.PickUp(command.AgentID(), time.Now())
	})
}
