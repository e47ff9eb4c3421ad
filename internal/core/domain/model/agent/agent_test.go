package agent_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/agent"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newAgent(t *testing.T) *agent.Agent {
	t.Helper()
	station := kernel.NewUUID()
	a, err := agent.NewAgent(kernel.NewUUID(), "Sam", "555-0100", "bike", "LIC-1", &station, now)
	require.NoError(t, err)
	return a
}

func TestNewAgent(t *testing.T) {
	t.Run("starts available with initial rating", func(t *testing.T) {
		a := newAgent(t)

		require.NoError(t, a.Validate())
		assert.Equal(t, agent.Available, a.Status())
		assert.InDelta(t, 5.0, a.Rating(), 1e-9)
		assert.Equal(t, 0, a.TotalDeliveries())
		assert.Nil(t, a.CurrentOrder())
		assert.Nil(t, a.Location())
	})

	t.Run("requires name and phone", func(t *testing.T) {
		_, err := agent.NewAgent(kernel.NewUUID(), " ", "", "bike", "", nil, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "phone")
	})
}

func TestRestoreAgent(t *testing.T) {
	t.Run("busy agent must hold an order", func(t *testing.T) {
		_, err := agent.RestoreAgent(agent.RestoreParams{
			ID: kernel.NewUUID(), Name: "Sam", Phone: "555", Status: agent.Busy,
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := agent.RestoreAgent(agent.RestoreParams{
			ID: kernel.NewUUID(), Name: "Sam", Phone: "555", Status: "asleep",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "asleep")
	})
}

func TestAgent_AssignRelease(t *testing.T) {
	t.Run("assign then release counts a delivery", func(t *testing.T) {
		a := newAgent(t)
		orderID := kernel.NewUUID()

		require.NoError(t, a.Assign(orderID))
		assert.Equal(t, agent.Busy, a.Status())
		assert.True(t, a.CurrentOrder().IsEqual(orderID))

		require.NoError(t, a.Release(orderID))
		assert.Equal(t, agent.Available, a.Status())
		assert.Nil(t, a.CurrentOrder())
		assert.Equal(t, 1, a.TotalDeliveries())
	})

	t.Run("busy agent cannot be assigned", func(t *testing.T) {
		a := newAgent(t)
		require.NoError(t, a.Assign(kernel.NewUUID()))

		err := a.Assign(kernel.NewUUID())

		require.ErrorIs(t, err, agent.ErrAgentIsNotAvailable)
	})

	t.Run("release for another order fails", func(t *testing.T) {
		a := newAgent(t)
		require.NoError(t, a.Assign(kernel.NewUUID()))

		err := a.Release(kernel.NewUUID())

		require.ErrorIs(t, err, agent.ErrAgentIsNotBusy)
		assert.Equal(t, agent.Busy, a.Status())
		assert.Equal(t, 0, a.TotalDeliveries())
	})
}

func TestAgent_MoveTo(t *testing.T) {
	a := newAgent(t)
	point, _ := kernel.NewGeoPoint(30.1, -97.7)

	require.NoError(t, a.MoveTo(point, now))
	require.NotNil(t, a.Location())
	assert.Equal(t, point, a.Location().Point)
	assert.Equal(t, now, a.Location().ReportedAt)

	require.Error(t, a.MoveTo(kernel.GeoPoint{}, now))
}
