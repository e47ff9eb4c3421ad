package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"
)

// AdvanceStageCommandHandler completes the current stage and starts the next one.
//
// Example:
//
//	transition, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrAlreadyFinal):
//	    // journey is at out_for_delivery
//	case errors.Is(err, order.ErrNotReady):
//	    // an agent holds the order, or it is delivered or cancelled
//	case err == nil:
//	    log.Printf("order is now %s", transition.NewStatus)
//	}
type AdvanceStageCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAdvanceStageCommandHandler(uowFactory OrderUoWFactory) AdvanceStageCommandHandler {
	return AdvanceStageCommandHandler{uowFactory: uowFactory}
}

func (h AdvanceStageCommandHandler) Handle(ctx context.Context, command AdvanceStageCommand) (order.StageTransition, error) {
	if err := command.Validate(); err != nil {
		return order.StageTransition{}, err
	}

	var transition order.StageTransition
	err := mutateOrder(ctx, h.uowFactory, command.OrderID(), func(o *order.Order) error {
		var err error
		transition, err = o.AdvanceStage(time.Now())
		return err
	})
	if err != nil {
		return order.StageTransition{}, err
	}

	return transition, nil
}
