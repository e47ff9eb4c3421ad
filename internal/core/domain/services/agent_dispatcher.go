package services

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/agent"
	"storefront/internal/core/domain/model/order"
)

// ErrNoAvailableAgent is returned when no candidate agent can take the order.
var ErrNoAvailableAgent = errors.New("no available delivery agent")

// AgentSelector chooses the agent for an order among the candidates of its local
// station. Implementations must not mutate either side.
type AgentSelector interface {
	Select(o *order.Order, candidates []*agent.Agent) (*agent.Agent, error)
}

// FirstAvailable selects the first available candidate. Candidates come from storage
// ordered by registration time, so this is the oldest registered free agent.
type FirstAvailable struct{}

// Select implements AgentSelector.
func (FirstAvailable) Select(_ *order.Order, candidates []*agent.Agent) (*agent.Agent, error) {
	for _, a := range candidates {
		if err := a.Validate(); err != nil {
			return nil, err
		}
		if a.IsAvailable() {
			return a, nil
		}
	}
	return nil, ErrNoAvailableAgent
}

// AgentDispatcher is a domain service that assigns a waiting order to a delivery agent.
//
// Business rules:
//   - The order must be waiting_for_agent and routed to a local station
//   - Candidates are the agents of that local station
//   - The selector decides which candidate takes the order
//   - Order and agent are updated together; the caller persists both in one transaction
//
// Example usage:
//
//	dispatcher := services.NewAgentDispatcher(services.FirstAvailable{})
//	assigned, err := dispatcher.Dispatch(o, candidates, time.Now())
//	if errors.Is(err, services.ErrNoAvailableAgent) {
//	    // retry later
//	}
type AgentDispatcher struct {
	selector AgentSelector
}

// NewAgentDispatcher creates a dispatcher with the given selection policy.
func NewAgentDispatcher(selector AgentSelector) AgentDispatcher {
	return AgentDispatcher{selector: selector}
}

// Dispatch selects an agent, marks it busy with the order and records the agent on the
// order, which moves to agent_assigned.
func (d AgentDispatcher) Dispatch(o *order.Order, candidates []*agent.Agent, now time.Time) (*agent.Agent, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := o.ValidateAssign(); err != nil {
		return nil, err
	}

	chosen, err := d.selector.Select(o, candidates)
	if err != nil {
		return nil, err
	}

	contact, err := order.NewAgentContact(chosen.ID(), chosen.Name(), chosen.Phone())
	if err != nil {
		return nil, err
	}
	if err = chosen.Assign(o.ID()); err != nil {
		return nil, err
	}
	if err = o.AssignAgent(contact, now); err != nil {
		return nil, err
	}

	return chosen, nil
}
