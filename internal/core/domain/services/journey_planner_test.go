package services_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/station"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func newStation(t *testing.T, name, city string, stationType station.Type) *station.Station {
	t.Helper()
	point, err := kernel.NewGeoPoint(30.2672, -97.7431)
	require.NoError(t, err)
	s, err := station.NewStation(kernel.NewUUID(), name, name+" Rd", city, stationType, point, now)
	require.NoError(t, err)
	return s
}

func newOrderIn(t *testing.T, city string) *order.Order {
	t.Helper()
	address, err := order.NewShippingAddress("Jane Doe", "1 Main St", city, "TX", "73301", nil)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Mug", kernel.Money(1250), 1, "")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Item{item}, address, "card", now)
	require.NoError(t, err)
	return o
}

func stageNames(j order.Journey) []order.StageName {
	names := make([]order.StageName, 0, len(j.Stages()))
	for _, s := range j.Stages() {
		names = append(names, s.Name())
	}
	return names
}

func TestJourneyPlanner_Plan(t *testing.T) {
	planner := services.NewJourneyPlanner(services.DefaultJourneyPolicy())

	t.Run("should plan four stages without a regional hub", func(t *testing.T) {
		o := newOrderIn(t, " Austin ")
		fc := newStation(t, "FC East", "newark", station.FulfillmentCenter)
		local := newStation(t, "Austin Local", "austin", station.LocalStation)

		journey, err := planner.Plan(o, services.Network{FulfillmentCenter: fc, LocalStation: local}, now)

		require.NoError(t, err)
		assert.Equal(t, []order.StageName{
			order.StageFulfillmentProcessing,
			order.StageLocalStationArrival,
			order.StageAgentAssignment,
			order.StageOutForDelivery,
		}, stageNames(journey))
		assert.Equal(t, order.FulfillmentProcessing, o.Status())
		assert.Equal(t, 0, o.Journey().CurrentIndex())
		assert.Equal(t, order.StageInProgress, journey.Current().Status())
		assert.Nil(t, o.AssignedStations().RegionalHub())
		assert.Equal(t, local.ID(), o.AssignedStations().LocalStation())
		assert.Equal(t, fc.ID(), o.AssignedStations().FulfillmentCenter())
	})

	t.Run("should plan five stages with offsets from now", func(t *testing.T) {
		o := newOrderIn(t, "Austin")
		network := services.Network{
			FulfillmentCenter: newStation(t, "FC East", "newark", station.FulfillmentCenter),
			RegionalHub:       newStation(t, "Austin Hub", "austin", station.RegionalHub),
			LocalStation:      newStation(t, "Austin Local", "austin", station.LocalStation),
		}

		journey, err := planner.Plan(o, network, now)

		require.NoError(t, err)
		require.Len(t, journey.Stages(), 5)
		offsets := []time.Duration{2 * time.Hour, 8 * time.Hour, 12 * time.Hour, 14 * time.Hour, 16 * time.Hour}
		for i, s := range journey.Stages() {
			assert.Equal(t, now.Add(offsets[i]), s.EstimatedTime(), "stage %d", i)
		}
		assert.Equal(t, now.Add(16*time.Hour), journey.EstimatedDelivery())
		assert.Equal(t, "In transit to regional hub in austin", journey.Stages()[1].Description())
		assert.Equal(t, "Customer Address", journey.Stages()[4].Location())
		assert.Equal(t, "1 Main St", journey.Stages()[4].Address())
		require.NotNil(t, o.AssignedStations().RegionalHub())
		assert.Equal(t, network.RegionalHub.ID(), *o.AssignedStations().RegionalHub())
	})

	t.Run("should use a custom policy", func(t *testing.T) {
		policy := services.JourneyPolicy{
			Fulfillment:     time.Hour,
			RegionalTransit: 2 * time.Hour,
			LocalStation:    3 * time.Hour,
			AgentAssignment: 3 * time.Hour,
			OutForDelivery:  5 * time.Hour,
		}
		require.NoError(t, policy.Validate())
		o := newOrderIn(t, "Austin")

		journey, err := services.NewJourneyPlanner(policy).Plan(o, services.Network{
			FulfillmentCenter: newStation(t, "FC", "newark", station.FulfillmentCenter),
			LocalStation:      newStation(t, "Local", "austin", station.LocalStation),
		}, now)

		require.NoError(t, err)
		assert.Equal(t, now.Add(5*time.Hour), journey.EstimatedDelivery())
	})

	t.Run("should fail without a local station", func(t *testing.T) {
		o := newOrderIn(t, "Austin")

		_, err := planner.Plan(o, services.Network{
			FulfillmentCenter: newStation(t, "FC", "newark", station.FulfillmentCenter),
		}, now)

		require.ErrorIs(t, err, order.ErrNoLocalStation)
		assert.Equal(t, order.OrderPlaced, o.Status())
		assert.Nil(t, o.Journey())
	})

	t.Run("should fail without a fulfillment center", func(t *testing.T) {
		o := newOrderIn(t, "Austin")

		_, err := planner.Plan(o, services.Network{
			LocalStation: newStation(t, "Local", "austin", station.LocalStation),
		}, now)

		require.ErrorIs(t, err, services.ErrNoFulfillmentCenter)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should fail for a blank city", func(t *testing.T) {
		_, err := planner.Plan(newOrderIn(t, " "), services.Network{}, now)

		require.ErrorIs(t, err, order.ErrMissingCity)
	})

	t.Run("should fail for an already planned order", func(t *testing.T) {
		o := newOrderIn(t, "Austin")
		network := services.Network{
			FulfillmentCenter: newStation(t, "FC", "newark", station.FulfillmentCenter),
			LocalStation:      newStation(t, "Local", "austin", station.LocalStation),
		}
		_, err := planner.Plan(o, network, now)
		require.NoError(t, err)

		_, err = planner.Plan(o, network, now)

		require.ErrorIs(t, err, order.ErrNotReady)
	})

	t.Run("should reject a station of the wrong type", func(t *testing.T) {
		o := newOrderIn(t, "Austin")

		_, err := planner.Plan(o, services.Network{
			FulfillmentCenter: newStation(t, "FC", "newark", station.FulfillmentCenter),
			LocalStation:      newStation(t, "Hub", "austin", station.RegionalHub),
		}, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.OrderPlaced, o.Status())
	})
}

func TestJourneyPolicy_Validate(t *testing.T) {
	require.NoError(t, services.DefaultJourneyPolicy().Validate())

	decreasing := services.DefaultJourneyPolicy()
	decreasing.LocalStation = time.Hour
	require.ErrorIs(t, decreasing.Validate(), errs.ErrValueIsInvalid)

	zero := services.DefaultJourneyPolicy()
	zero.Fulfillment = 0
	require.ErrorIs(t, zero.Validate(), errs.ErrValueIsInvalid)
}
