package commands_test

import (
	"context"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/agent"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/restock"
	"storefront/internal/core/domain/model/station"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListIDsByStatus(ctx context.Context, status order.Status, limit int) ([]kernel.UUID, error) {
	args := m.Called(ctx, status, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

type MockInventoryLedger struct{ mock.Mock }

func (m *MockInventoryLedger) ReserveStock(ctx context.Context, productID kernel.UUID, quantity int) error {
	args := m.Called(ctx, productID, quantity)
	return args.Error(0)
}

func (m *MockInventoryLedger) RestoreStock(ctx context.Context, productID kernel.UUID, quantity int) error {
	args := m.Called(ctx, productID, quantity)
	return args.Error(0)
}

type MockStationRepository struct{ mock.Mock }

func (m *MockStationRepository) Add(ctx context.Context, s *station.Station) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStationRepository) Get(ctx context.Context, id kernel.UUID) (*station.Station, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*station.Station), args.Error(1)
}

func (m *MockStationRepository) FindFirst(ctx context.Context, stationType station.Type, city string) (*station.Station, error) {
	args := m.Called(ctx, stationType, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*station.Station), args.Error(1)
}

type MockAgentRepository struct{ mock.Mock }

func (m *MockAgentRepository) Add(ctx context.Context, a *agent.Agent) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAgentRepository) Update(ctx context.Context, a *agent.Agent) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAgentRepository) Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Agent), args.Error(1)
}

func (m *MockAgentRepository) ListAvailableAtStation(ctx context.Context, stationID kernel.UUID) ([]*agent.Agent, error) {
	args := m.Called(ctx, stationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*agent.Agent), args.Error(1)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) AddItem(ctx context.Context, userID, productID kernel.UUID, quantity int) error {
	args := m.Called(ctx, userID, productID, quantity)
	return args.Error(0)
}

func (m *MockCartRepository) Clear(ctx context.Context, userID kernel.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockRestockRepository struct{ mock.Mock }

func (m *MockRestockRepository) Add(ctx context.Context, task *restock.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockRestockRepository) MarkApplied(ctx context.Context, id kernel.UUID, at time.Time) (bool, error) {
	args := m.Called(ctx, id, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockRestockRepository) RecordFailure(ctx context.Context, id kernel.UUID, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}

func (m *MockRestockRepository) ListPending(ctx context.Context, limit int) ([]*restock.Task, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*restock.Task), args.Error(1)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) InventoryLedger() ports.InventoryLedger {
	args := m.Called()
	return args.Get(0).(ports.InventoryLedger)
}

func (m *MockUoW) StationRepository() ports.StationRepository {
	args := m.Called()
	return args.Get(0).(ports.StationRepository)
}

func (m *MockUoW) AgentRepository() ports.AgentRepository {
	args := m.Called()
	return args.Get(0).(ports.AgentRepository)
}

func (m *MockUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

func (m *MockUoW) RestockRepository() ports.RestockRepository {
	args := m.Called()
	return args.Get(0).(ports.RestockRepository)
}

// MockUoWFactory hands out MockUoW instances in the order they were queued and
// satisfies the factory interface of each handler through the typed views below.
type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) create() *MockUoW {
	args := m.Called()
	return args.Get(0).(*MockUoW)
}

func (m *MockUoWFactory) Catalog() commands.CatalogUoWFactory     { return catalogFactory{m} }
func (m *MockUoWFactory) Cart() commands.CartUoWFactory           { return cartFactory{m} }
func (m *MockUoWFactory) Network() commands.NetworkUoWFactory     { return networkFactory{m} }
func (m *MockUoWFactory) Order() commands.OrderUoWFactory         { return orderFactory{m} }
func (m *MockUoWFactory) Placement() commands.PlacementUoWFactory { return placementFactory{m} }
func (m *MockUoWFactory) Planning() commands.PlanningUoWFactory   { return planningFactory{m} }
func (m *MockUoWFactory) Delivery() commands.DeliveryUoWFactory   { return deliveryFactory{m} }
func (m *MockUoWFactory) Return() commands.ReturnUoWFactory       { return returnFactory{m} }

type (
	catalogFactory   struct{ m *MockUoWFactory }
	cartFactory      struct{ m *MockUoWFactory }
	networkFactory   struct{ m *MockUoWFactory }
	orderFactory     struct{ m *MockUoWFactory }
	placementFactory struct{ m *MockUoWFactory }
	planningFactory  struct{ m *MockUoWFactory }
	deliveryFactory  struct{ m *MockUoWFactory }
	returnFactory    struct{ m *MockUoWFactory }
)

func (f catalogFactory) Create() commands.CatalogUoW     { return f.m.create() }
func (f cartFactory) Create() commands.CartUoW           { return f.m.create() }
func (f networkFactory) Create() commands.NetworkUoW     { return f.m.create() }
func (f orderFactory) Create() commands.OrderUoW         { return f.m.create() }
func (f placementFactory) Create() commands.PlacementUoW { return f.m.create() }
func (f planningFactory) Create() commands.PlanningUoW   { return f.m.create() }
func (f deliveryFactory) Create() commands.DeliveryUoW   { return f.m.create() }
func (f returnFactory) Create() commands.ReturnUoW       { return f.m.create() }
