package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrPickUpOrderCommandIsNotConstructed = errors.New(
	"PickUpOrderCommand must be created via NewPickUpOrderCommand constructor",
)

// PickUpOrderCommand records that the assigned agent collected the package.
type PickUpOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewPickUpOrderCommand(orderID, agentID kernel.UUID) (PickUpOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), validAgentID(agentID)); err != nil {
		return PickUpOrderCommand{}, err
	}
	return PickUpOrderCommand{orderID: orderID, agentID: agentID, guard: guard.NewConstructorGuard()}, nil
}

func (c PickUpOrderCommand) Validate() error {
	return c.guard.Validate(ErrPickUpOrderCommandIsNotConstructed)
}

func (c PickUpOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c PickUpOrderCommand) AgentID() kernel.UUID { return c.agentID }

func validAgentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("agentId", err)
	}
	return nil
}
