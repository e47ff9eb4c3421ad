package commands

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrAssignWaitingOrdersCommandIsNotConstructed = errors.New(
	"AssignWaitingOrdersCommand must be created via NewAssignWaitingOrdersCommand constructor",
)

// AssignWaitingOrdersCommand retries agent assignment for up to batchSize orders in
// waiting_for_agent, oldest first.
type AssignWaitingOrdersCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

func NewAssignWaitingOrdersCommand(batchSize int) (AssignWaitingOrdersCommand, error) {
	if batchSize <= 0 {
		return AssignWaitingOrdersCommand{}, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, "unbounded")
	}
	return AssignWaitingOrdersCommand{batchSize: batchSize, guard: guard.NewConstructorGuard()}, nil
}

func (c AssignWaitingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAssignWaitingOrdersCommandIsNotConstructed)
}

func (c AssignWaitingOrdersCommand) BatchSize() int { return c.batchSize }
