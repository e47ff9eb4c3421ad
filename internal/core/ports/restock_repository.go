package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/restock"
)

// RestockRepository stores the compensating restock steps of approved returns.
type RestockRepository interface {
	Add(ctx context.Context, task *restock.Task) error

	// MarkApplied flips a task from pending to applied with a conditional update.
	// It reports false when the task was already applied, so the caller must not
	// restock again.
	MarkApplied(ctx context.Context, id kernel.UUID, at time.Time) (bool, error)

	// RecordFailure increments the attempt counter and stores the last error.
	RecordFailure(ctx context.Context, id kernel.UUID, reason string) error

	// ListPending returns up to limit pending tasks, oldest first.
	ListPending(ctx context.Context, limit int) ([]*restock.Task, error)
}
