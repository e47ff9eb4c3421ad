package ports

import (
	"context"

	"storefront/internal/core/domain/model/agent"
	"storefront/internal/core/domain/model/kernel"
)

// AgentRepository stores delivery agents.
type AgentRepository interface {
	Add(ctx context.Context, a *agent.Agent) error
	Update(ctx context.Context, a *agent.Agent) error
	Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error)

	// ListAvailableAtStation returns the available agents of a station, oldest first.
	ListAvailableAtStation(ctx context.Context, stationID kernel.UUID) ([]*agent.Agent, error)
}
