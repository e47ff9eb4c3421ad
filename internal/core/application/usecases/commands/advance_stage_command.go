package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrAdvanceStageCommandIsNotConstructed = errors.New(
	"AdvanceStageCommand must be created via NewAdvanceStageCommand constructor",
)

// AdvanceStageCommand moves an order's journey to its next stage.
type AdvanceStageCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAdvanceStageCommand(orderID kernel.UUID) (AdvanceStageCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AdvanceStageCommand{}, err
	}
	return AdvanceStageCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c AdvanceStageCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceStageCommandIsNotConstructed)
}

func (c AdvanceStageCommand) OrderID() kernel.UUID { return c.orderID }
