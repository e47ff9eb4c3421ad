package commands_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/agent"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/station"
	"storefront/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

var fixtureTime = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func point(t *testing.T, lat, lon float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lon)
	require.NoError(t, err)
	return p
}

func address(t *testing.T, city string, coordinates *kernel.GeoPoint) order.ShippingAddress {
	t.Helper()
	a, err := order.NewShippingAddress("Jane Doe", "1 Main St", city, "TX", "73301", coordinates)
	require.NoError(t, err)
	return a
}

func newProduct(t *testing.T, name string, price kernel.Money, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), name, price, name+".png", stock, fixtureTime)
	require.NoError(t, err)
	return p
}

func newStation(t *testing.T, name, city string, stationType station.Type) *station.Station {
	t.Helper()
	s, err := station.NewStation(kernel.NewUUID(), name, name+" Rd", city, stationType, point(t, 30.2672, -97.7431), fixtureTime)
	require.NoError(t, err)
	return s
}

func newAgent(t *testing.T, name string, stationID *kernel.UUID) *agent.Agent {
	t.Helper()
	a, err := agent.NewAgent(kernel.NewUUID(), name, "555-0100", "bike", "L-1", stationID, fixtureTime)
	require.NoError(t, err)
	return a
}

// placedOrder returns an order_placed order for userID with one line per product.
func placedOrder(t *testing.T, userID kernel.UUID, shipTo order.ShippingAddress, products ...*product.Product) *order.Order {
	t.Helper()
	items := make([]order.Item, 0, len(products))
	for _, p := range products {
		item, err := order.NewItem(p.ID(), p.Name(), p.Price(), 2, p.Image())
		require.NoError(t, err)
		items = append(items, item)
	}
	o, err := order.NewOrder(kernel.NewUUID(), userID, items, shipTo, "card", fixtureTime)
	require.NoError(t, err)
	return o
}

// waitingOrder returns an order advanced to waiting_for_agent through local.
func waitingOrder(t *testing.T, local *station.Station, coordinates *kernel.GeoPoint) *order.Order {
	t.Helper()
	o := placedOrder(t, kernel.NewUUID(), address(t, "Austin", coordinates), newProduct(t, "Mug", 1250, 10))
	_, err := services.NewJourneyPlanner(services.DefaultJourneyPolicy()).Plan(o, services.Network{
		FulfillmentCenter: newStation(t, "FC", "newark", station.FulfillmentCenter),
		LocalStation:      local,
	}, fixtureTime)
	require.NoError(t, err)
	for o.Status() != order.WaitingForAgent {
		_, err = o.AdvanceStage(fixtureTime)
		require.NoError(t, err)
	}
	o.ClearDomainEvents()
	return o
}

// heldOrder returns an order assigned to a newly registered agent and moved on to
// status, which is agent_assigned, picked_up or on_the_way.
func heldOrder(t *testing.T, status order.Status, coordinates *kernel.GeoPoint) (*order.Order, *agent.Agent) {
	t.Helper()
	local := newStation(t, "Local", "austin", station.LocalStation)
	o := waitingOrder(t, local, coordinates)
	stationID := local.ID()
	a := newAgent(t, "Sam", &stationID)
	_, err := services.NewAgentDispatcher(services.FirstAvailable{}).Dispatch(o, []*agent.Agent{a}, fixtureTime)
	require.NoError(t, err)

	if status == order.PickedUp || status == order.OnTheWay {
		require.NoError(t, o.PickUp(a.ID(), fixtureTime))
	}
	if status == order.OnTheWay {
		require.NoError(t, o.StartDelivery(a.ID(), fixtureTime))
	}
	require.Equal(t, status, o.Status())
	o.ClearDomainEvents()
	return o, a
}
