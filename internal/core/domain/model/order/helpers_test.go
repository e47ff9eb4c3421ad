package order_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func newItem(t *testing.T, price kernel.Money, quantity int) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Item", price, quantity, "img.png")
	require.NoError(t, err)
	return item
}

func newAddress(t *testing.T, coordinates *kernel.GeoPoint) order.ShippingAddress {
	t.Helper()
	address, err := order.NewShippingAddress("Jane Doe", "1 Main St", " Austin ", "TX", "73301", coordinates)
	require.NoError(t, err)
	return address
}

func newOrder(t *testing.T, items ...order.Item) *order.Order {
	t.Helper()
	if len(items) == 0 {
		items = []order.Item{newItem(t, 1000, 2)}
	}
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, newAddress(t, nil), "card", baseTime)
	require.NoError(t, err)
	return o
}

func stages(t *testing.T, names ...order.StageName) []order.Stage {
	t.Helper()
	result := make([]order.Stage, 0, len(names))
	for i, name := range names {
		s, err := order.NewStage(name, "loc", "addr", baseTime.Add(time.Duration(i+1)*time.Hour), string(name))
		require.NoError(t, err)
		result = append(result, s)
	}
	return result
}

func fullJourney(t *testing.T) order.Journey {
	t.Helper()
	j, err := order.NewJourney(stages(t,
		order.StageFulfillmentProcessing,
		order.StageRegionalTransit,
		order.StageLocalStationArrival,
		order.StageAgentAssignment,
		order.StageOutForDelivery,
	), baseTime)
	require.NoError(t, err)
	return j
}

func stations(t *testing.T) order.AssignedStations {
	t.Helper()
	s, err := order.NewAssignedStations(kernel.NewUUID(), nil, kernel.NewUUID())
	require.NoError(t, err)
	return s
}

// plannedOrder returns an order routed through a five stage journey and advanced
// until it waits for an agent.
func plannedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := newOrder(t)
	require.NoError(t, o.PlanJourney(fullJourney(t), stations(t), baseTime))
	for o.Status() != order.WaitingForAgent {
		_, err := o.AdvanceStage(baseTime.Add(time.Minute))
		require.NoError(t, err)
	}
	return o
}

func assertJourneyInvariant(t *testing.T, j *order.Journey) {
	t.Helper()
	require.NotNil(t, j)
	inProgress := 0
	for i, s := range j.Stages() {
		switch {
		case i < j.CurrentIndex():
			require.Equal(t, order.StageCompleted, s.Status(), "stage %d", i)
		case i == j.CurrentIndex():
			require.Equal(t, order.StageInProgress, s.Status(), "stage %d", i)
			inProgress++
		default:
			require.Equal(t, order.StagePending, s.Status(), "stage %d", i)
		}
	}
	require.Equal(t, 1, inProgress)
}

func assertTotalMatchesItems(t *testing.T, o *order.Order) {
	t.Helper()
	var sum kernel.Money
	for _, item := range o.Items() {
		sum += item.Price().Times(item.Quantity())
	}
	require.Equal(t, sum, o.TotalAmount())
}
