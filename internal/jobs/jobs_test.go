package jobs_test

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type MockAssigner struct {
	mock.Mock
}

func (m *MockAssigner) Handle(ctx context.Context, command commands.AssignWaitingOrdersCommand) (commands.AssignmentResult, error) {
	args := m.Called(ctx, command)
	return args.Get(0).(commands.AssignmentResult), args.Error(1)
}

type MockReconciler struct {
	mock.Mock
}

func (m *MockReconciler) Handle(ctx context.Context, command commands.ReconcileRestocksCommand) (commands.ReconcileResult, error) {
	args := m.Called(ctx, command)
	return args.Get(0).(commands.ReconcileResult), args.Error(1)
}

func observed(level zapcore.Level) (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return zap.New(core), logs
}

func TestAgentAssignmentJob_Run(t *testing.T) {
	t.Run("should log assigned orders", func(t *testing.T) {
		ctx := t.Context()
		logger, logs := observed(zapcore.InfoLevel)
		handler := new(MockAssigner)
		handler.On("Handle", ctx, mock.MatchedBy(func(c commands.AssignWaitingOrdersCommand) bool {
			return c.BatchSize() == 10
		})).Return(commands.AssignmentResult{Assigned: 2, Waiting: 1}, nil).Once()

		jobs.NewAgentAssignmentJob(handler, "* * * * * *", 10, logger).Run(ctx)

		handler.AssertExpectations(t)
		entries := logs.FilterMessage("assigned waiting orders").All()
		require.Len(t, entries, 1)
		assert.Equal(t, int64(2), entries[0].ContextMap()["assigned"])
		assert.Equal(t, "agent_assignment_job", entries[0].ContextMap()["component"])
	})

	t.Run("should stay quiet while orders keep waiting", func(t *testing.T) {
		ctx := t.Context()
		logger, logs := observed(zapcore.InfoLevel)
		handler := new(MockAssigner)
		handler.On("Handle", ctx, mock.Anything).Return(commands.AssignmentResult{Waiting: 3}, nil).Once()

		jobs.NewAgentAssignmentJob(handler, "* * * * * *", 0, logger).Run(ctx)

		assert.Zero(t, logs.Len())
	})

	t.Run("should log failures as errors", func(t *testing.T) {
		ctx := t.Context()
		logger, logs := observed(zapcore.InfoLevel)
		handler := new(MockAssigner)
		handler.On("Handle", ctx, mock.Anything).Return(commands.AssignmentResult{}, errors.New("database down")).Once()

		jobs.NewAgentAssignmentJob(handler, "* * * * * *", 0, logger).Run(ctx)

		require.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
	})
}

func TestRestockReconciliationJob_Run(t *testing.T) {
	t.Run("should log reconciled tasks", func(t *testing.T) {
		ctx := t.Context()
		logger, logs := observed(zapcore.InfoLevel)
		handler := new(MockReconciler)
		handler.On("Handle", ctx, mock.MatchedBy(func(c commands.ReconcileRestocksCommand) bool {
			return c.BatchSize() == jobs.DefaultRestockBatch
		})).Return(commands.ReconcileResult{Applied: 1, Failed: 1}, nil).Once()

		jobs.NewRestockReconciliationJob(handler, "* * * * * *", 0, logger).Run(ctx)

		handler.AssertExpectations(t)
		entries := logs.FilterMessage("reconciled restock tasks").All()
		require.Len(t, entries, 1)
		assert.Equal(t, int64(1), entries[0].ContextMap()["failed"])
	})

	t.Run("should log nothing without pending tasks", func(t *testing.T) {
		ctx := t.Context()
		logger, logs := observed(zapcore.DebugLevel)
		handler := new(MockReconciler)
		handler.On("Handle", ctx, mock.Anything).Return(commands.ReconcileResult{}, nil).Once()

		jobs.NewRestockReconciliationJob(handler, "* * * * * *", 0, logger).Run(ctx)

		assert.Zero(t, logs.Len())
	})
}

func TestJobManager_StartAll_InvalidSchedule(t *testing.T) {
	logger, _ := observed(zapcore.InfoLevel)
	assignment := jobs.NewAgentAssignmentJob(new(MockAssigner), "*/30 * * * * *", 0, logger)
	reconciliation := jobs.NewRestockReconciliationJob(new(MockReconciler), "not a schedule", 0, logger)

	err := jobs.NewJobManager(assignment, reconciliation).StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "restock reconciliation job")
}

func TestJobManager_StartAndStop(t *testing.T) {
	logger, logs := observed(zapcore.InfoLevel)
	manager := jobs.NewJobManager(
		jobs.NewAgentAssignmentJob(new(MockAssigner), "0 0 0 1 1 *", 0, logger),
		jobs.NewRestockReconciliationJob(new(MockReconciler), "0 0 0 1 1 *", 0, logger),
	)

	require.NoError(t, manager.StartAll())
	manager.StopAll()

	assert.Equal(t, 1, logs.FilterMessage("agent assignment job started").Len())
	assert.Equal(t, 1, logs.FilterMessage("restock reconciliation job stopped").Len())
}
