package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrAssignAgentCommandIsNotConstructed = errors.New(
	"AssignAgentCommand must be created via NewAssignAgentCommand constructor",
)

// AssignAgentCommand triggers the assignment of an available agent of the order's local
// station.
//
// Example:
//
//	cmd, _ := NewAssignAgentCommand(orderID)
//	contact, err := NewAssignAgentCommandHandler(uowFactory, dispatcher).Handle(ctx, cmd)
//	if errors.Is(err, services.ErrNoAvailableAgent) {
//	    log.Printf("All agents of the station are busy: %v", err)
//	}
type AssignAgentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignAgentCommand(orderID kernel.UUID) (AssignAgentCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AssignAgentCommand{}, err
	}
	return AssignAgentCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignAgentCommandIsNotConstructed if validation fails.
func (c AssignAgentCommand) Validate() error {
	return c.guard.Validate(ErrAssignAgentCommandIsNotConstructed)
}

func (c AssignAgentCommand) OrderID() kernel.UUID { return c.orderID }
