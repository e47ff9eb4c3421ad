package jobs

import (
	"context"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultRestockBatch is the number of pending restock tasks one run applies.
const DefaultRestockBatch = 100

type restockReconciler interface {
	Handle(ctx context.Context, command commands.ReconcileRestocksCommand) (commands.ReconcileResult, error)
}

// RestockReconciliationJob applies restock tasks whose immediate application after a
// return approval failed.
type RestockReconciliationJob struct {
	handler  restockReconciler
	schedule string
	batch    int
	cron     *cron.Cron
	logger   *zap.Logger
}

func NewRestockReconciliationJob(handler restockReconciler, schedule string, batch int, logger *zap.Logger) *RestockReconciliationJob {
	if batch <= 0 {
		batch = DefaultRestockBatch
	}
	return &RestockReconciliationJob{
		handler:  handler,
		schedule: schedule,
		batch:    batch,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With(zap.String("component", "restock_reconciliation_job")),
	}
}

func (j *RestockReconciliationJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("restock reconciliation job started", zap.String("schedule", j.schedule))
	return nil
}

// Run performs one pass. Individual task failures are logged by the restocker and
// retried on the next pass.
func (j *RestockReconciliationJob) Run(ctx context.Context) {
	cmd, err := commands.NewReconcileRestocksCommand(j.batch)
	if err != nil {
		j.logger.Error("invalid restock batch", zap.Error(err))
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.Error("restock reconciliation job failed", zap.Error(err))
		return
	}
	if result.Applied > 0 || result.Failed > 0 {
		j.logger.Info("reconciled restock tasks",
			zap.Int("applied", result.Applied),
			zap.Int("failed", result.Failed))
	}
}

func (j *RestockReconciliationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("restock reconciliation job stopped")
}
