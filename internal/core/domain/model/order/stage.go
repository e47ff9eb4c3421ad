package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/pkg/errs"
)

// StageName identifies a step of the delivery journey.
type StageName string

const (
	StageFulfillmentProcessing StageName = "fulfillment_processing"
	StageRegionalTransit       StageName = "regional_transit"
	StageLocalStationArrival   StageName = "local_station_arrival"
	StageAgentAssignment       StageName = "agent_assignment"
	StageOutForDelivery        StageName = "out_for_delivery"
)

// OrderStatus returns the status an order takes when this stage becomes current.
// Unknown stage names map to InTransit.
func (n StageName) OrderStatus() Status {
	switch n {
	case StageRegionalTransit:
		return RegionalTransit
	case StageLocalStationArrival:
		return LocalStation
	case StageAgentAssignment:
		return WaitingForAgent
	case StageOutForDelivery:
		return OutForDelivery
	case StageFulfillmentProcessing:
		return InTransit
	default:
		return InTransit
	}
}

// StageStatus is the progress of a single stage.
type StageStatus string

const (
	StagePending    StageStatus = "pending"
	StageInProgress StageStatus = "in_progress"
	StageCompleted  StageStatus = "completed"
)

func (s StageStatus) validate() error {
	switch s {
	case StagePending, StageInProgress, StageCompleted:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("stage status", fmt.Errorf("%q is not a stage status", string(s)))
	}
}

// Stage is one element of a Journey. It is a value: transitions return a copy.
type Stage struct {
	name          StageName
	location      string
	address       string
	status        StageStatus
	estimatedTime time.Time
	startedAt     *time.Time
	completedAt   *time.Time
	description   string
}

// NewStage creates a pending stage.
//
// Example:
//
//	stage, err := order.NewStage(order.StageFulfillmentProcessing, fc.Name(), fc.Address(),
//	    now.Add(2*time.Hour), "Order being processed at fulfillment center")
func NewStage(name StageName, location, address string, estimatedTime time.Time, description string) (Stage, error) {
	return RestoreStage(name, location, address, StagePending, estimatedTime, nil, nil, description)
}

// RestoreStage rebuilds a stage from storage.
func RestoreStage(
	name StageName,
	location, address string,
	status StageStatus,
	estimatedTime time.Time,
	startedAt, completedAt *time.Time,
	description string,
) (Stage, error) {
	var nameErr, timeErr error
	if strings.TrimSpace(string(name)) == "" {
		nameErr = errs.NewValueIsRequiredError("stage name")
	}
	if estimatedTime.IsZero() {
		timeErr = errs.NewValueIsRequiredError("stage estimated time")
	}
	if err := errors.Join(nameErr, timeErr, status.validate()); err != nil {
		return Stage{}, err
	}

	return Stage{
		name:          name,
		location:      location,
		address:       address,
		status:        status,
		estimatedTime: estimatedTime,
		startedAt:     startedAt,
		completedAt:   completedAt,
		description:   description,
	}, nil
}

func (s Stage) Name() StageName          { return s.name }
func (s Stage) Location() string         { return s.location }
func (s Stage) Address() string          { return s.address }
func (s Stage) Status() StageStatus      { return s.status }
func (s Stage) EstimatedTime() time.Time { return s.estimatedTime }
func (s Stage) StartedAt() *time.Time    { return s.startedAt }
func (s Stage) CompletedAt() *time.Time  { return s.completedAt }
func (s Stage) Description() string      { return s.description }

func (s Stage) start(now time.Time) Stage {
	s.status = StageInProgress
	s.startedAt = &now
	return s
}

func (s Stage) complete(now time.Time) Stage {
	s.status = StageCompleted
	s.completedAt = &now
	return s
}
