package queries_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/agent"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/station"

	"github.com/stretchr/testify/require"
)

var fixtureTime = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func point(t *testing.T, lat, lon float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return p
}

func newOrderAt(t *testing.T, userID kernel.UUID, coordinates *kernel.GeoPoint, at time.Time, prices ...kernel.Money) *order.Order {
	t.Helper()
	address, err := order.NewShippingAddress("Jane Doe", "1 Main St", "Austin", "TX", "73301", coordinates)
	require.NoError(t, err)

	items := make([]order.Item, 0, len(prices))
	for _, price := range prices {
		item, itemErr := order.NewItem(kernel.NewUUID(), "Item", price, 1, "")
		require.NoError(t, itemErr)
		items = append(items, item)
	}
	o, err := order.NewOrder(kernel.NewUUID(), userID, items, address, "card", at)
	require.NoError(t, err)
	return o
}

func newStation(t *testing.T, name string, stationType station.Type, at time.Time) *station.Station {
	t.Helper()
	s, err := station.NewStation(kernel.NewUUID(), name, name+" Rd", "Austin", stationType, point(t, 30.2672, -97.7431), at)
	require.NoError(t, err)
	return s
}

// deliveringOrder returns a planned order held by a freshly assigned agent.
func deliveringOrder(t *testing.T, coordinates *kernel.GeoPoint) (*order.Order, *agent.Agent, []*station.Station) {
	t.Helper()
	fc := newStation(t, "FC", station.FulfillmentCenter, fixtureTime)
	local := newStation(t, "Local", station.LocalStation, fixtureTime)

	o := newOrderAt(t, kernel.NewUUID(), coordinates, fixtureTime, 1250)
	stages := make([]order.Stage, 0, 4)
	for i, name := range []order.StageName{
		order.StageFulfillmentProcessing, order.StageLocalStationArrival, order.StageAgentAssignment, order.StageOutForDelivery,
	} {
		stage, err := order.NewStage(name, "Austin", "", fixtureTime.Add(time.Duration(i+1)*time.Hour), string(name))
		require.NoError(t, err)
		stages = append(stages, stage)
	}
	journey, err := order.NewJourney(stages, fixtureTime)
	require.NoError(t, err)
	assigned, err := order.NewAssignedStations(fc.ID(), nil, local.ID())
	require.NoError(t, err)
	require.NoError(t, o.PlanJourney(journey, assigned, fixtureTime))
	for range 2 {
		_, err = o.AdvanceStage(fixtureTime)
		require.NoError(t, err)
	}

	localID := local.ID()
	a, err := agent.NewAgent(kernel.NewUUID(), "Sam", "555-0100", "bike", "L-1", &localID, fixtureTime)
	require.NoError(t, err)
	contact, err := order.NewAgentContact(a.ID(), a.Name(), a.Phone())
	require.NoError(t, err)
	require.NoError(t, a.Assign(o.ID()))
	require.NoError(t, o.AssignAgent(contact, fixtureTime))

	return o, a, []*station.Station{fc, local}
}
