package commands

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// UpdateAgentLocationCommandHandler stores agent positions and refreshes the tracking
// estimate of the order the agent holds.
//
// The estimate is only refreshed when the order is in an active delivery status and its
// shipping address has coordinates. Otherwise only the agent position changes.
type UpdateAgentLocationCommandHandler struct {
	uowFactory DeliveryUoWFactory
	speedKmh   float64
}

// NewUpdateAgentLocationCommandHandler uses speedKmh for arrival estimates. A
// non-positive speed falls back to order.DefaultAgentSpeedKmh.
func NewUpdateAgentLocationCommandHandler(uowFactory DeliveryUoWFactory, speedKmh float64) UpdateAgentLocationCommandHandler {
	if speedKmh <= 0 {
		speedKmh = order.DefaultAgentSpeedKmh
	}
	return UpdateAgentLocationCommandHandler{uowFactory: uowFactory, speedKmh: speedKmh}
}

func (h UpdateAgentLocationCommandHandler) Handle(ctx context.Context, command UpdateAgentLocationCommand) error {
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

	agents := uow.AgentRepository()
	a, err := agents.Get(ctx, command.AgentID())
	if err != nil {
		return err
	}

	now := time.Now()
	if err = a.MoveTo(command.Location(), now); err != nil {
		return err
	}
	if err = agents.Update(ctx, a); err != nil {
		return err
	}

	if orderID := a.CurrentOrder(); orderID != nil {
		orders := uow.OrderRepository()
		o, getErr := orders.Get(ctx, *orderID)
		switch {
		case getErr == nil:
			if o.Status().IsAgentHeld() && o.ShippingAddress().Coordinates() != nil {
				if err = o.TrackAgent(command.Location(), h.speedKmh, now); err != nil {
					return err
				}
				if err = orders.Update(ctx, o); err != nil {
					return err
				}
			}
		case !errors.Is(getErr, errs.ErrObjectNotFound):
			return getErr
		}
	}

	return uow.Commit(ctx)
}
