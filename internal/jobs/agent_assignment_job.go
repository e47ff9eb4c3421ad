package jobs

import (
	"context"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultAssignmentBatch is the number of waiting orders one run retries.
const DefaultAssignmentBatch = 50

type waitingOrderAssigner interface {
	Handle(ctx context.Context, command commands.AssignWaitingOrdersCommand) (commands.AssignmentResult, error)
}

// AgentAssignmentJob retries agent assignment for orders left in waiting_for_agent
// because no agent was free when they reached the agent assignment stage.
type AgentAssignmentJob struct {
	handler  waitingOrderAssigner
	schedule string
	batch    int
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewAgentAssignmentJob runs handler on schedule, a six-field cron expression with seconds.
func NewAgentAssignmentJob(handler waitingOrderAssigner, schedule string, batch int, logger *zap.Logger) *AgentAssignmentJob {
	if batch <= 0 {
		batch = DefaultAssignmentBatch
	}
	return &AgentAssignmentJob{
		handler:  handler,
		schedule: schedule,
		batch:    batch,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With(zap.String("component", "agent_assignment_job")),
	}
}

// Start schedules the job.
func (j *AgentAssignmentJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("agent assignment job started", zap.String("schedule", j.schedule))
	return nil
}

// Run performs one pass. Orders that still find no agent are not an error.
func (j *AgentAssignmentJob) Run(ctx context.Context) {
	cmd, err := commands.NewAssignWaitingOrdersCommand(j.batch)
	if err != nil {
		j.logger.Error("invalid assignment batch", zap.Error(err))
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.Error("agent assignment job failed", zap.Error(err))
	}
	if result.Assigned > 0 {
		j.logger.Info("assigned waiting orders",
			zap.Int("assigned", result.Assigned),
			zap.Int("waiting", result.Waiting))
	} else if result.Waiting > 0 {
		j.logger.Debug("orders still waiting for an agent", zap.Int("waiting", result.Waiting))
	}
}

// Stop stops the schedule and waits for a running pass to finish.
func (j *AgentAssignmentJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("agent assignment job stopped")
}
