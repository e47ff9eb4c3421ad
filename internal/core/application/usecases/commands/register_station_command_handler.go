package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/station"
)

// RegisterStationCommandHandler stores new stations. The city is kept lower-cased so
// routing can match it against normalized shipping cities.
type RegisterStationCommandHandler struct {
	uowFactory NetworkUoWFactory
}

func NewRegisterStationCommandHandler(uowFactory NetworkUoWFactory) RegisterStationCommandHandler {
	return RegisterStationCommandHandler{uowFactory: uowFactory}
}

func (h RegisterStationCommandHandler) Handle(ctx context.Context, command RegisterStationCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	s, err := station.NewStation(
		command.StationID(),
		command.Name(),
		command.Address(),
		command.City(),
		command.Type(),
		command.Coordinates(),
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

	if err = uow.StationRepository().Add(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
