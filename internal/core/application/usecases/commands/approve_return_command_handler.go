package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/restock"

	"go.uber.org/zap"
)

// ApproveReturnCommandHandler approves returns in two steps.
//
// The first transaction approves the return, removes the item, lowers the order total
// and records a pending restock task. It is version checked, so two concurrent
// approvals of the same return cannot both succeed.
//
// The second transaction applies the task: it flips the task to applied and only then
// gives the stock back. When it fails the approval still stands and the task stays
// pending for ReconcileRestocksCommandHandler.
type ApproveReturnCommandHandler struct {
	uowFactory ReturnUoWFactory
	restocker  restocker
}

func NewApproveReturnCommandHandler(uowFactory ReturnUoWFactory, logger *zap.Logger) ApproveReturnCommandHandler {
	return ApproveReturnCommandHandler{
		uowFactory: uowFactory,
		restocker:  newRestocker(uowFactory, logger),
	}
}

// Handle returns the refunded line. It fails with order.ErrReturnNotFound,
// order.ErrAlreadyApproved or order.ErrItemNotFound before anything is changed.
func (h ApproveReturnCommandHandler) Handle(ctx context.Context, command ApproveReturnCommand) (order.ReturnOutcome, error) {
	if err := command.Validate(); err != nil {
		return order.ReturnOutcome{}, err
	}

	outcome, task, err := h.approve(ctx, command)
	if err != nil {
		return order.ReturnOutcome{}, err
	}

	_, _ = h.restocker.apply(ctx, task)

	return outcome, nil
}

func (h ApproveReturnCommandHandler) approve(
	ctx context.Context,
	command ApproveReturnCommand,
) (order.ReturnOutcome, *restock.Task, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.ReturnOutcome{}, nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	o, err := orders.Get(ctx, command.OrderID())
	if err != nil {
		return order.ReturnOutcome{}, nil, err
	}

	now := time.Now()
	outcome, err := o.ApproveReturn(command.ProductID(), now)
	if err != nil {
		return order.ReturnOutcome{}, nil, err
	}

	task, err := restock.NewTask(o.ID(), outcome.ProductID, outcome.Quantity, now)
	if err != nil {
		return order.ReturnOutcome{}, nil, err
	}

	if err = orders.Update(ctx, o); err != nil {
		return order.ReturnOutcome{}, nil, err
	}
	if err = uow.RestockRepository().Add(ctx, task); err != nil {
		return order.ReturnOutcome{}, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.ReturnOutcome{}, nil, err
	}

	return outcome, task, nil
}
