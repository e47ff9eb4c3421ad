package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"
)

// AssignmentResult counts the outcome of one assignment pass.
type AssignmentResult struct {
	Assigned int
	Waiting  int
}

// AssignWaitingOrdersCommandHandler runs AssignAgentCommandHandler for every waiting
// order of the batch, each in its own transaction.
//
// Orders without a free agent stay waiting. Orders that changed since they were listed
// are skipped. Any other failure is returned after the whole batch was tried.
type AssignWaitingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	assigner   AssignAgentCommandHandler
}

func NewAssignWaitingOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	assigner AssignAgentCommandHandler,
) AssignWaitingOrdersCommandHandler {
	return AssignWaitingOrdersCommandHandler{
		uowFactory: uowFactory,
		assigner:   assigner,
	}
}

func (h AssignWaitingOrdersCommandHandler) Handle(ctx context.Context, command AssignWaitingOrdersCommand) (AssignmentResult, error) {
	if err := command.Validate(); err != nil {
		return AssignmentResult{}, err
	}

	ids, err := h.uowFactory.Create().OrderRepository().ListIDsByStatus(ctx, order.WaitingForAgent, command.BatchSize())
	if err != nil {
		return AssignmentResult{}, err
	}

	var (
		result AssignmentResult
		failed []error
	)
	for _, id := range ids {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		assignCmd, cmdErr := NewAssignAgentCommand(id)
		if cmdErr != nil {
			failed = append(failed, cmdErr)
			continue
		}

		_, assignErr := h.assigner.Handle(ctx, assignCmd)
		switch {
		case assignErr == nil:
			result.Assigned++
		case errors.Is(assignErr, services.ErrNoAvailableAgent):
			result.Waiting++
		case errors.Is(assignErr, order.ErrNotReady), errors.Is(assignErr, errs.ErrVersionIsInvalid):
			// changed since listed
		default:
			failed = append(failed, assignErr)
		}
	}

	return result, errors.Join(failed...)
}
