// Package agent models delivery agents dispatched from a local station.
//
// Lifecycle:
//
//	available ──Assign──> busy ──Release──> available
//	offline (set externally, never assigned)
package agent

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// InitialRating is the rating of a newly registered agent.
const InitialRating = 5.0

var (
	ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent constructor")
	ErrAgentIsNotAvailable   = errors.New("agent is not available")
	ErrAgentIsNotBusy        = errors.New("agent is not busy with this order")
)

// Status is the availability of an agent.
type Status string

const (
	Available Status = "available"
	Busy      Status = "busy"
	Offline   Status = "offline"
)

func (s Status) validate() error {
	switch s {
	case Available, Busy, Offline:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("agent status", fmt.Errorf("%q is not an agent status", string(s)))
	}
}

// Location is the last reported agent position.
type Location struct {
	Point      kernel.GeoPoint
	ReportedAt time.Time
}

// Agent is a delivery agent. It holds at most one order at a time. The version is
// owned by the repository and guards concurrent writes.
type Agent struct {
	id              kernel.UUID
	name            string
	phone           string
	vehicleType     string
	licenseNumber   string
	stationID       *kernel.UUID
	status          Status
	location        *Location
	currentOrder    *kernel.UUID
	totalDeliveries int
	rating          float64
	createdAt       time.Time
	version         int64
	isConstructed   bool
}

// NewAgent registers an available agent with the initial rating and no deliveries.
// stationID may be nil for agents not bound to a station.
func NewAgent(
	id kernel.UUID,
	name, phone, vehicleType, licenseNumber string,
	stationID *kernel.UUID,
	now time.Time,
) (*Agent, error) {
	return RestoreAgent(RestoreParams{
		ID:            id,
		Name:          name,
		Phone:         phone,
		VehicleType:   vehicleType,
		LicenseNumber: licenseNumber,
		StationID:     stationID,
		Status:        Available,
		Rating:        InitialRating,
		CreatedAt:     now,
	})
}

// RestoreParams is the persisted state of an agent.
type RestoreParams struct {
	ID              kernel.UUID
	Name            string
	Phone           string
	VehicleType     string
	LicenseNumber   string
	StationID       *kernel.UUID
	Status          Status
	Location        *Location
	CurrentOrder    *kernel.UUID
	TotalDeliveries int
	Rating          float64
	CreatedAt       time.Time
	Version         int64
}

// RestoreAgent rebuilds an agent from storage. A busy agent must hold an order and an
// available one must not.
func RestoreAgent(p RestoreParams) (*Agent, error) {
	var nameErr, phoneErr, orderErr, countErr error
	if strings.TrimSpace(p.Name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if strings.TrimSpace(p.Phone) == "" {
		phoneErr = errs.NewValueIsRequiredError("phone")
	}
	if (p.Status == Busy) != (p.CurrentOrder != nil) {
		orderErr = errs.NewValueIsInvalidErrorWithCause("currentOrder",
			fmt.Errorf("agent in status %s cannot have current order %v", p.Status, p.CurrentOrder != nil))
	}
	if p.TotalDeliveries < 0 {
		countErr = errs.NewValueIsInvalidErrorWithCause("totalDeliveries", fmt.Errorf("%d is negative", p.TotalDeliveries))
	}

	if err := errors.Join(p.ID.Validate(), nameErr, phoneErr, p.Status.validate(), orderErr, countErr); err != nil {
		return nil, err
	}

	return &Agent{
		id:              p.ID,
		name:            p.Name,
		phone:           p.Phone,
		vehicleType:     p.VehicleType,
		licenseNumber:   p.LicenseNumber,
		stationID:       p.StationID,
		status:          p.Status,
		location:        p.Location,
		currentOrder:    p.CurrentOrder,
		totalDeliveries: p.TotalDeliveries,
		rating:          p.Rating,
		createdAt:       p.CreatedAt,
		version:         p.Version,
		isConstructed:   true,
	}, nil
}

// Validate ensures the agent was built through a constructor.
func (a *Agent) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAgentIsNotConstructed
	}
	return nil
}

func (a *Agent) ID() kernel.UUID            { return a.id }
func (a *Agent) Name() string               { return a.name }
func (a *Agent) Phone() string              { return a.phone }
func (a *Agent) VehicleType() string        { return a.vehicleType }
func (a *Agent) LicenseNumber() string      { return a.licenseNumber }
func (a *Agent) StationID() *kernel.UUID    { return a.stationID }
func (a *Agent) Status() Status             { return a.status }
func (a *Agent) Location() *Location        { return a.location }
func (a *Agent) CurrentOrder() *kernel.UUID { return a.currentOrder }
func (a *Agent) TotalDeliveries() int       { return a.totalDeliveries }
func (a *Agent) Rating() float64            { return a.rating }
func (a *Agent) CreatedAt() time.Time       { return a.createdAt }
func (a *Agent) Version() int64             { return a.version }

// IncrementVersion is called by repositories after a successful write.
func (a *Agent) IncrementVersion() {
	a.version++
}

// IsAvailable reports whether the agent can take an order.
func (a *Agent) IsAvailable() bool {
	return a.status == Available
}

// Assign makes the agent busy with orderID.
func (a *Agent) Assign(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if a.status != Available {
		return errs.NewValueIsInvalidErrorWithCause("agent status", fmt.Errorf("%w: %s", ErrAgentIsNotAvailable, a.status))
	}

	a.status = Busy
	a.currentOrder = &orderID
	return nil
}

// Release frees the agent after delivering orderID and counts the delivery.
func (a *Agent) Release(orderID kernel.UUID) error {
	if a.status != Busy || a.currentOrder == nil || !a.currentOrder.IsEqual(orderID) {
		return errs.NewValueIsInvalidErrorWithCause("agent status", fmt.Errorf("%w: %s", ErrAgentIsNotBusy, orderID))
	}

	a.status = Available
	a.currentOrder = nil
	a.totalDeliveries++
	return nil
}

// MoveTo records a new position.
func (a *Agent) MoveTo(point kernel.GeoPoint, at time.Time) error {
	if err := point.Validate(); err != nil {
		return err
	}
	a.location = &Location{Point: point, ReportedAt: at}
	return nil
}
