package queries_test

import (
	"context"

	"storefront/internal/core/domain/model/agent"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/station"

	"github.com/stretchr/testify/mock"
)

type MockOrderReader struct {
	mock.Mock
}

func (m *MockOrderReader) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockStationReader struct {
	mock.Mock
}

func (m *MockStationReader) Get(ctx context.Context, id kernel.UUID) (*station.Station, error) {
	args := m.Called(ctx, id)
	if s := args.Get(0); s != nil {
		return s.(*station.Station), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAgentReader struct {
	mock.Mock
}

func (m *MockAgentReader) Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error) {
	args := m.Called(ctx, id)
	if a := args.Get(0); a != nil {
		return a.(*agent.Agent), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockTrackingCache struct {
	mock.Mock
}

func (m *MockTrackingCache) Get(ctx context.Context, orderID kernel.UUID) ([]byte, bool, error) {
	args := m.Called(ctx, orderID)
	payload, _ := args.Get(0).([]byte)
	return payload, args.Bool(1), args.Error(2)
}

func (m *MockTrackingCache) Set(ctx context.Context, orderID kernel.UUID, payload []byte) error {
	args := m.Called(ctx, orderID, payload)
	return args.Error(0)
}

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(kernel.UUID, any) {}
