package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/agent"
)

// RegisterAgentCommandHandler stores new agents as available with the initial rating.
type RegisterAgentCommandHandler struct {
	uowFactory NetworkUoWFactory
}

func NewRegisterAgentCommandHandler(uowFactory NetworkUoWFactory) RegisterAgentCommandHandler {
	return RegisterAgentCommandHandler{uowFactory: uowFactory}
}

// Handle returns errs.ErrObjectNotFound when the given station does not exist.
func (h RegisterAgentCommandHandler) Handle(ctx context.Context, command RegisterAgentCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	a, err := agent.NewAgent(
		command.AgentID(),
		command.Name(),
		command.Phone(),
		command.VehicleType(),
		command.LicenseNumber(),
		command.StationID(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if stationID := command.StationID(); stationID != nil {
		if _, err = uow.StationRepository().Get(ctx, *stationID); err != nil {
			return err
		}
	}

	if err = uow.AgentRepository().Add(ctx, a); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
