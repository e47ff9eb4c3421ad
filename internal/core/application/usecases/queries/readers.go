// Package queries contains read operations. Queries never change state: single
// aggregates are loaded through repository readers and lists are read with raw SQL.
package queries

import (
	"context"

	"storefront/internal/core/domain/model/agent"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/station"
)

type (
	// OrderReader loads an order aggregate.
	OrderReader interface {
		Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	}

	// StationReader loads a station.
	StationReader interface {
		Get(ctx context.Context, id kernel.UUID) (*station.Station, error)
	}

	// AgentReader loads a delivery agent.
	AgentReader interface {
		Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error)
	}

	// TrackingCache keeps rendered tracking views by order id.
	TrackingCache interface {
		Get(ctx context.Context, orderID kernel.UUID) ([]byte, bool, error)
		Set(ctx context.Context, orderID kernel.UUID, payload []byte) error
	}
)
