package commands

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrReconcileRestocksCommandIsNotConstructed = errors.New(
	"ReconcileRestocksCommand must be created via NewReconcileRestocksCommand constructor",
)

// ReconcileRestocksCommand retries up to batchSize pending restock tasks.
type ReconcileRestocksCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

func NewReconcileRestocksCommand(batchSize int) (ReconcileRestocksCommand, error) {
	if batchSize <= 0 {
		return ReconcileRestocksCommand{}, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, "unbounded")
	}
	return ReconcileRestocksCommand{batchSize: batchSize, guard: guard.NewConstructorGuard()}, nil
}

func (c ReconcileRestocksCommand) Validate() error {
	return c.guard.Validate(ErrReconcileRestocksCommandIsNotConstructed)
}

func (c ReconcileRestocksCommand) BatchSize() int { return c.batchSize }
