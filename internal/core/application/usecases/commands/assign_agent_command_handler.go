package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
)

// AssignAgentCommandHandler orchestrates agent assignment.
// Loads the waiting order and the available agents of its local station, lets the
// dispatcher pick one and stores both aggregates within a single transaction.
type AssignAgentCommandHandler struct {
	uowFactory DeliveryUoWFactory
	dispatcher services.AgentDispatcher
}

// NewAssignAgentCommandHandler creates a handler for agent assignment operations.
func NewAssignAgentCommandHandler(uowFactory DeliveryUoWFactory, dispatcher services.AgentDispatcher) AssignAgentCommandHandler {
	return AssignAgentCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle returns the contact of the assigned agent.
// Returns order.ErrNotReady unless the order is waiting_for_agent and
// services.ErrNoAvailableAgent when every agent of the station is busy.
func (h AssignAgentCommandHandler) Handle(ctx context.Context, command AssignAgentCommand) (order.AgentContact, error) {
	if err := command.Validate(); err != nil {
		return order.AgentContact{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.AgentContact{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	agents := uow.AgentRepository()

	o, err := orders.Get(ctx, command.OrderID())
	if err != nil {
		return order.AgentContact{}, err
	}
	if err = o.ValidateAssign(); err != nil {
		return order.AgentContact{}, err
	}

	candidates, err := agents.ListAvailableAtStation(ctx, o.AssignedStations().LocalStation())
	if err != nil {
		return order.AgentContact{}, err
	}

	assigned, err := h.dispatcher.Dispatch(o, candidates, time.Now())
	if err != nil {
		return order.AgentContact{}, err
	}

	if err = orders.Update(ctx, o); err != nil {
		return order.AgentContact{}, err
	}
	if err = agents.Update(ctx, assigned); err != nil {
		return order.AgentContact{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.AgentContact{}, err
	}

	return *o.Agent(), nil
}
