package commands

import (
	"context"
	"time"
)

// CompleteDeliveryCommandHandler delivers the order and frees its agent in one
// transaction, so neither can be observed without the other.
type CompleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewCompleteDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{uowFactory: uowFactory}
}

func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, command CompleteDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	agents := uow.AgentRepository()

	o, err := orders.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}
	if err = o.Complete(command.AgentID(), command.Proof(), time.Now()); err != nil {
		return err
	}

	a, err := agents.Get(ctx, command.AgentID())
	if err != nil {
		return err
	}
	if err = a.Release(o.ID()); err != nil {
		return err
	}

	if err = orders.Update(ctx, o); err != nil {
		return err
	}
	if err = agents.Update(ctx, a); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
