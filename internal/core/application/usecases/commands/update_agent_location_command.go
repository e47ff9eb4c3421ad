package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrUpdateAgentLocationCommandIsNotConstructed = errors.New(
	"UpdateAgentLocationCommand must be created via NewUpdateAgentLocationCommand constructor",
)

// UpdateAgentLocationCommand carries a position reported by an agent.
type UpdateAgentLocationCommand struct { //nolint:recvcheck //using for validation
	agentID  kernel.UUID
	location kernel.GeoPoint

	guard guard.ConstructorGuard
}

func NewUpdateAgentLocationCommand(agentID kernel.UUID, location kernel.GeoPoint) (UpdateAgentLocationCommand, error) {
	if err := errors.Join(validAgentID(agentID), location.Validate()); err != nil {
		return UpdateAgentLocationCommand{}, err
	}
	return UpdateAgentLocationCommand{agentID: agentID, location: location, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateAgentLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAgentLocationCommandIsNotConstructed)
}

func (c UpdateAgentLocationCommand) AgentID() kernel.UUID      { return c.agentID }
func (c UpdateAgentLocationCommand) Location() kernel.GeoPoint { return c.location }
