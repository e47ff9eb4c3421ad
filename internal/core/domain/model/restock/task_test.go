package restock_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/restock"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	orderID, productID := kernel.NewUUID(), kernel.NewUUID()
	now := time.Now()

	t.Run("is pending with a derived id", func(t *testing.T) {
		task, err := restock.NewTask(orderID, productID, 2, now)

		require.NoError(t, err)
		require.NoError(t, task.Validate())
		assert.Equal(t, restock.Pending, task.Status())
		assert.True(t, task.ID().IsEqual(restock.TaskID(orderID, productID)))
		assert.Equal(t, 0, task.Attempts())
	})

	t.Run("same return yields the same id", func(t *testing.T) {
		a, _ := restock.NewTask(orderID, productID, 2, now)
		b, _ := restock.NewTask(orderID, productID, 2, now.Add(time.Hour))

		assert.True(t, a.ID().IsEqual(b.ID()))
		assert.False(t, a.ID().IsEqual(restock.TaskID(orderID, kernel.NewUUID())))
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := restock.NewTask(orderID, productID, 0, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
