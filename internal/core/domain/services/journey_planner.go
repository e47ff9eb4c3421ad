package services

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/station"
	"storefront/internal/pkg/errs"
)

// ErrNoFulfillmentCenter is returned when no fulfillment center is registered.
var ErrNoFulfillmentCenter = errors.New("no fulfillment center available")

// JourneyPolicy holds the estimated time of each stage as an offset from the moment
// the journey is planned. Offsets must be positive and non-decreasing.
type JourneyPolicy struct {
	Fulfillment     time.Duration
	RegionalTransit time.Duration
	LocalStation    time.Duration
	AgentAssignment time.Duration
	OutForDelivery  time.Duration
}

// DefaultJourneyPolicy returns the 2h/8h/12h/14h/16h schedule.
func DefaultJourneyPolicy() JourneyPolicy {
	return JourneyPolicy{
		Fulfillment:     2 * time.Hour,
		RegionalTransit: 8 * time.Hour,
		LocalStation:    12 * time.Hour,
		AgentAssignment: 14 * time.Hour,
		OutForDelivery:  16 * time.Hour,
	}
}

// Validate checks that offsets are positive and never go backwards.
func (p JourneyPolicy) Validate() error {
	offsets := []time.Duration{p.Fulfillment, p.RegionalTransit, p.LocalStation, p.AgentAssignment, p.OutForDelivery}
	var prev time.Duration
	for i, d := range offsets {
		if d <= 0 || d < prev {
			return errs.NewValueIsInvalidErrorWithCause("journey policy",
				fmt.Errorf("offset %d (%s) must be positive and not before %s", i, d, prev))
		}
		prev = d
	}
	return nil
}

// Network is the set of stations found for an order's city. RegionalHub is optional.
type Network struct {
	FulfillmentCenter *station.Station
	RegionalHub       *station.Station
	LocalStation      *station.Station
}

// JourneyPlanner is a domain service that routes an order through the delivery network.
//
// Stage list:
//
//	fulfillment_processing → [regional_transit] → local_station_arrival → agent_assignment → out_for_delivery
//
// The regional transit stage is only planned when the city has a hub. The final stage
// targets the customer address.
//
// Example usage:
//
//	planner := services.NewJourneyPlanner(services.DefaultJourneyPolicy())
//	journey, err := planner.Plan(o, services.Network{FulfillmentCenter: fc, LocalStation: local}, time.Now())
type JourneyPlanner struct {
	policy JourneyPolicy
}

// NewJourneyPlanner creates a planner using policy. The policy is expected to be valid.
func NewJourneyPlanner(policy JourneyPolicy) JourneyPlanner {
	return JourneyPlanner{policy: policy}
}

// Plan builds the journey, attaches it to the order and moves the order to
// fulfillment_processing.
//
// Returns:
//   - order.ErrNotReady / order.ErrMissingCity from the order itself
//   - ErrNoFulfillmentCenter when the network has none
//   - order.ErrNoLocalStation when the city has no local station
func (p JourneyPlanner) Plan(o *order.Order, network Network, now time.Time) (order.Journey, error) {
	if err := o.Validate(); err != nil {
		return order.Journey{}, err
	}
	city, err := o.RoutingCity()
	if err != nil {
		return order.Journey{}, err
	}
	if network.FulfillmentCenter == nil {
		return order.Journey{}, errs.NewObjectNotFoundErrorWithCause("fulfillment center", city, ErrNoFulfillmentCenter)
	}
	if network.LocalStation == nil {
		return order.Journey{}, errs.NewObjectNotFoundErrorWithCause("local station", city,
			fmt.Errorf("%w in %s", order.ErrNoLocalStation, city))
	}
	if err = network.validate(); err != nil {
		return order.Journey{}, err
	}

	stages, err := p.stages(o, network, now)
	if err != nil {
		return order.Journey{}, err
	}
	journey, err := order.NewJourney(stages, now)
	if err != nil {
		return order.Journey{}, err
	}

	var hubID *kernel.UUID
	if network.RegionalHub != nil {
		id := network.RegionalHub.ID()
		hubID = &id
	}
	stations, err := order.NewAssignedStations(network.FulfillmentCenter.ID(), hubID, network.LocalStation.ID())
	if err != nil {
		return order.Journey{}, err
	}

	if err = o.PlanJourney(journey, stations, now); err != nil {
		return order.Journey{}, err
	}
	return journey, nil
}

func (p JourneyPlanner) stages(o *order.Order, network Network, now time.Time) ([]order.Stage, error) {
	fc, hub, local := network.FulfillmentCenter, network.RegionalHub, network.LocalStation

	type plan struct {
		name      order.StageName
		location  string
		address   string
		offset    time.Duration
		narrative string
	}
	plans := []plan{{order.StageFulfillmentProcessing, fc.Name(), fc.Address(), p.policy.Fulfillment,
		"Order being processed at fulfillment center"}}
	if hub != nil {
		plans = append(plans, plan{order.StageRegionalTransit, hub.Name(), hub.Address(), p.policy.RegionalTransit,
			"In transit to regional hub in " + hub.City()})
	}
	plans = append(plans,
		plan{order.StageLocalStationArrival, local.Name(), local.Address(), p.policy.LocalStation,
			"Arrived at local delivery station in " + local.City()},
		plan{order.StageAgentAssignment, local.Name(), local.Address(), p.policy.AgentAssignment,
			"Waiting for delivery agent assignment"},
		plan{order.StageOutForDelivery, "Customer Address", o.ShippingAddress().Address(), p.policy.OutForDelivery,
			"Out for delivery to customer"},
	)

	stages := make([]order.Stage, 0, len(plans))
	for _, s := range plans {
		stage, err := order.NewStage(s.name, s.location, s.address, now.Add(s.offset), s.narrative)
		if err != nil {
			return nil, err
		}
		stages = append(stages, stage)
	}
	return stages, nil
}

func (n Network) validate() error {
	check := func(s *station.Station, want station.Type) error {
		if s == nil {
			return nil
		}
		if err := s.Validate(); err != nil {
			return err
		}
		if s.Type() != want {
			return errs.NewValueIsInvalidErrorWithCause("station",
				fmt.Errorf("%s is a %s, want %s", s.ID(), s.Type(), want))
		}
		return nil
	}
	return errors.Join(
		check(n.FulfillmentCenter, station.FulfillmentCenter),
		check(n.RegionalHub, station.RegionalHub),
		check(n.LocalStation, station.LocalStation),
	)
}
