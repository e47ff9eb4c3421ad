package commands

import (
	"context"

	"go.uber.org/zap"
)

// ReconcileResult counts the outcome of one reconciliation pass.
type ReconcileResult struct {
	Applied int
	Failed  int
}

// ReconcileRestocksCommandHandler applies restock tasks left pending by return
// approvals. Each task is applied in its own transaction; one failing task does not
// stop the batch.
type ReconcileRestocksCommandHandler struct {
	uowFactory ReturnUoWFactory
	restocker  restocker
}

func NewReconcileRestocksCommandHandler(uowFactory ReturnUoWFactory, logger *zap.Logger) ReconcileRestocksCommandHandler {
	return ReconcileRestocksCommandHandler{
		uowFactory: uowFactory,
		restocker:  newRestocker(uowFactory, logger),
	}
}

func (h ReconcileRestocksCommandHandler) Handle(ctx context.Context, command ReconcileRestocksCommand) (ReconcileResult, error) {
	if err := command.Validate(); err != nil {
		return ReconcileResult{}, err
	}

	uow := h.uowFactory.Create()
	tasks, err := uow.RestockRepository().ListPending(ctx, command.BatchSize())
	if err != nil {
		return ReconcileResult{}, err
	}

	var result ReconcileResult
	for _, task := range tasks {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		applied, applyErr := h.restocker.apply(ctx, task)
		switch {
		case applyErr != nil:
			result.Failed++
		case applied:
			result.Applied++
		}
	}

	return result, nil
}
