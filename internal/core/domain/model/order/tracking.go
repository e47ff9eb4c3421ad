package order

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// AgentContact is the agent snapshot copied onto the order at assignment. It is
// retained after delivery.
type AgentContact struct {
	id    kernel.UUID
	name  string
	phone string
}

// NewAgentContact creates an agent snapshot.
func NewAgentContact(id kernel.UUID, name, phone string) (AgentContact, error) {
	if err := id.Validate(); err != nil {
		return AgentContact{}, err
	}
	return AgentContact{id: id, name: name, phone: phone}, nil
}

func (a AgentContact) ID() kernel.UUID { return a.id }
func (a AgentContact) Name() string    { return a.name }
func (a AgentContact) Phone() string   { return a.phone }

// Tracking is a denormalized display cache refreshed on agent location updates.
// It may be stale between updates.
type Tracking struct {
	agentLocation       *kernel.GeoPoint
	distanceRemainingKm *float64
	estimatedArrival    *time.Time
	lastUpdate          *time.Time
}

// RestoreTracking rebuilds the cache from storage.
func RestoreTracking(agentLocation *kernel.GeoPoint, distanceKm *float64, eta, lastUpdate *time.Time) Tracking {
	return Tracking{
		agentLocation:       agentLocation,
		distanceRemainingKm: distanceKm,
		estimatedArrival:    eta,
		lastUpdate:          lastUpdate,
	}
}

func (t Tracking) AgentLocation() *kernel.GeoPoint { return t.agentLocation }
func (t Tracking) DistanceRemainingKm() *float64   { return t.distanceRemainingKm }
func (t Tracking) EstimatedArrival() *time.Time    { return t.estimatedArrival }
func (t Tracking) LastUpdate() *time.Time          { return t.lastUpdate }

// DefaultAgentSpeedKmh is the average agent speed used for arrival estimates.
const DefaultAgentSpeedKmh = 30.0

// EstimateArrival returns the distance from agent to destination and the arrival time
// at speedKmh.
func EstimateArrival(agent, destination kernel.GeoPoint, speedKmh float64, now time.Time) (float64, time.Time) {
	distance := agent.DistanceKm(destination)
	travel := time.Duration(distance / speedKmh * float64(time.Hour))
	return distance, now.Add(travel)
}
