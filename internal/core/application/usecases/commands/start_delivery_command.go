package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrStartDeliveryCommandIsNotConstructed = errors.New(
	"StartDeliveryCommand must be created via NewStartDeliveryCommand constructor",
)

// StartDeliveryCommand puts a picked up order on its way to the customer.
type StartDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewStartDeliveryCommand(orderID, agentID kernel.UUID) (StartDeliveryCommand, error) {
	if err := errors.Join(orderID.Validate(), validAgentID(agentID)); err != nil {
		return StartDeliveryCommand{}, err
	}
	return StartDeliveryCommand{orderID: orderID, agentID: agentID, guard: guard.NewConstructorGuard()}, nil
}

func (c StartDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveryCommandIsNotConstructed)
}

func (c StartDeliveryCommand) OrderID() kernel.UUID { return c.orderID }
func (c StartDeliveryCommand) AgentID() kernel.UUID { return c.agentID }
