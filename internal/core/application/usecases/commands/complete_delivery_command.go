package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand marks an order delivered by its agent. Proof is optional,
// usually a photo reference or the name of the person who signed.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	agentID kernel.UUID
	proof   string

	guard guard.ConstructorGuard
}

func NewCompleteDeliveryCommand(orderID, agentID kernel.UUID, proof string) (CompleteDeliveryCommand, error) {
	if err := errors.Join(orderID.Validate(), validAgentID(agentID)); err != nil {
		return CompleteDeliveryCommand{}, err
	}
	return CompleteDeliveryCommand{
		orderID: orderID,
		agentID: agentID,
		proof:   proof,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

func (c CompleteDeliveryCommand) OrderID() kernel.UUID { return c.orderID }
func (c CompleteDeliveryCommand) AgentID() kernel.UUID { return c.agentID }
func (c CompleteDeliveryCommand) Proof() string        { return c.proof }
