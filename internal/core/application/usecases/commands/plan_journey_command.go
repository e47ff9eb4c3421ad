package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrPlanJourneyCommandIsNotConstructed = errors.New(
	"PlanJourneyCommand must be created via NewPlanJourneyCommand constructor",
)

// PlanJourneyCommand routes a freshly placed order through the delivery network.
type PlanJourneyCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewPlanJourneyCommand(orderID kernel.UUID) (PlanJourneyCommand, error) {
	if err := orderID.Validate(); err != nil {
		return PlanJourneyCommand{}, err
	}
	return PlanJourneyCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c PlanJourneyCommand) Validate() error {
	return c.guard.Validate(ErrPlanJourneyCommandIsNotConstructed)
}

func (c PlanJourneyCommand) OrderID() kernel.UUID { return c.orderID }
