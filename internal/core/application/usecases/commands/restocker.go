package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/restock"

	"go.uber.org/zap"
)

// restocker applies pending restock tasks at most once each.
type restocker struct {
	uowFactory ReturnUoWFactory
	logger     *zap.Logger
}

func newRestocker(uowFactory ReturnUoWFactory, logger *zap.Logger) restocker {
	return restocker{
		uowFactory: uowFactory,
		logger:     logger.With(zap.String("component", "restocker")),
	}
}

// apply reports whether this call gave the stock back. A task that was already applied
// is skipped without error. Failures are recorded on the task and logged.
func (r restocker) apply(ctx context.Context, task *restock.Task) (bool, error) {
	applied, err := r.applyOnce(ctx, task)
	if err != nil {
		r.logger.Warn("restock left pending",
			zap.String("task_id", task.ID().String()),
			zap.String("order_id", task.OrderID().String()),
			zap.String("product_id", task.ProductID().String()),
			zap.Int("quantity", task.Quantity()),
			zap.Error(err))
		r.recordFailure(ctx, task, err)
		return false, err
	}
	return applied, nil
}

func (r restocker) applyOnce(ctx context.Context, task *restock.Task) (bool, error) {
	uow := r.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	applied, err := uow.RestockRepository().MarkApplied(ctx, task.ID(), time.Now())
	if err != nil {
		return false, err
	}
	if !applied {
		return false, nil
	}

	if err = uow.InventoryLedger().RestoreStock(ctx, task.ProductID(), task.Quantity()); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (r restocker) recordFailure(ctx context.Context, task *restock.Task, cause error) {
	uow := r.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		r.logger.Error("failed to record restock failure", zap.String("task_id", task.ID().String()), zap.Error(err))
		return
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.RestockRepository().RecordFailure(ctx, task.ID(), cause.Error()); err != nil {
		r.logger.Error("failed to record restock failure", zap.String("task_id", task.ID().String()), zap.Error(err))
		return
	}
	if err := uow.Commit(ctx); err != nil {
		r.logger.Error("failed to record restock failure", zap.String("task_id", task.ID().String()), zap.Error(err))
	}
}
