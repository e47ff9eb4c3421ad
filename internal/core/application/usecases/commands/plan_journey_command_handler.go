package commands

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/station"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// PlanJourneyCommandHandler looks up the stations for an order and hands them to the
// journey planner.
//
// Station lookup:
//   - fulfillment center: the oldest registered one, whatever its city
//   - regional hub: the oldest one in the shipping city, optional
//   - local station: the oldest one in the shipping city
//
// Example:
//
//	handler := NewPlanJourneyCommandHandler(uowFactory, services.NewJourneyPlanner(policy))
//	journey, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrNoFulfillmentCenter):
//	case errors.Is(err, order.ErrNoLocalStation):
//	case errors.Is(err, order.ErrMissingCity):
//	}
type PlanJourneyCommandHandler struct {
	uowFactory PlanningUoWFactory
	planner    services.JourneyPlanner
}

func NewPlanJourneyCommandHandler(uowFactory PlanningUoWFactory, planner services.JourneyPlanner) PlanJourneyCommandHandler {
	return PlanJourneyCommandHandler{
		uowFactory: uowFactory,
		planner:    planner,
	}
}

func (h PlanJourneyCommandHandler) Handle(ctx context.Context, command PlanJourneyCommand) (order.Journey, error) {
	if err := command.Validate(); err != nil {
		return order.Journey{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Journey{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	o, err := orders.Get(ctx, command.OrderID())
	if err != nil {
		return order.Journey{}, err
	}

	city, err := o.RoutingCity()
	if err != nil {
		return order.Journey{}, err
	}

	network, err := findNetwork(ctx, uow.StationRepository(), city)
	if err != nil {
		return order.Journey{}, err
	}

	journey, err := h.planner.Plan(o, network, time.Now())
	if err != nil {
		return order.Journey{}, err
	}

	if err = orders.Update(ctx, o); err != nil {
		return order.Journey{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Journey{}, err
	}

	return journey, nil
}

func findNetwork(ctx context.Context, stations ports.StationRepository, city string) (services.Network, error) {
	var (
		network services.Network
		err     error
	)
	if network.FulfillmentCenter, err = findOptional(ctx, stations, station.FulfillmentCenter, ""); err != nil {
		return services.Network{}, err
	}
	if network.RegionalHub, err = findOptional(ctx, stations, station.RegionalHub, city); err != nil {
		return services.Network{}, err
	}
	if network.LocalStation, err = findOptional(ctx, stations, station.LocalStation, city); err != nil {
		return services.Network{}, err
	}
	return network, nil
}

// findOptional maps a missing station to nil so the planner decides whether it matters.
func findOptional(
	ctx context.Context,
	stations ports.StationRepository,
	stationType station.Type,
	city string,
) (*station.Station, error) {
	s, err := stations.FindFirst(ctx, stationType, city)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
