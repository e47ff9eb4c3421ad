package order_test

import (
	"testing"

	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseManualStatus(t *testing.T) {
	for _, s := range []string{"order_placed", "shipped", "out_for_delivery", "delivered", "cancelled"} {
		status, err := order.ParseManualStatus(s)

		require.NoError(t, err, s)
		assert.Equal(t, s, status.String())
	}

	for _, s := range []string{"", "picked_up", "in_transit", "Shipped"} {
		_, err := order.ParseManualStatus(s)

		require.ErrorIs(t, err, order.ErrInvalidStatus, s)
	}
}

func TestParseStatus(t *testing.T) {
	status, err := order.ParseStatus("waiting_for_agent")
	require.NoError(t, err)
	assert.Equal(t, order.WaitingForAgent, status)

	_, err = order.ParseStatus("lost")
	require.ErrorIs(t, err, order.ErrInvalidStatus)
}

func TestStatus_Coarse(t *testing.T) {
	testCases := map[order.Status]order.Status{
		order.OrderPlaced:           order.OrderPlaced,
		order.FulfillmentProcessing: order.Shipped,
		order.RegionalTransit:       order.Shipped,
		order.LocalStation:          order.Shipped,
		order.WaitingForAgent:       order.Shipped,
		order.AgentAssigned:         order.Shipped,
		order.PickedUp:              order.Shipped,
		order.InTransit:             order.Shipped,
		order.OnTheWay:              order.OutForDelivery,
		order.OutForDelivery:        order.OutForDelivery,
		order.Delivered:             order.Delivered,
		order.Cancelled:             order.Cancelled,
	}

	for status, want := range testCases {
		assert.Equal(t, want, status.Coarse(), status.String())
	}
}

func TestStatus_Predicates(t *testing.T) {
	assert.True(t, order.Delivered.IsFinal())
	assert.True(t, order.Cancelled.IsFinal())
	assert.False(t, order.OutForDelivery.IsFinal())

	for _, s := range []order.Status{order.AgentAssigned, order.PickedUp, order.OnTheWay} {
		assert.True(t, s.IsAgentHeld(), s.String())
	}
	assert.False(t, order.WaitingForAgent.IsAgentHeld())

	assert.Equal(t, "Status updated", order.InTransit.Description())
}
