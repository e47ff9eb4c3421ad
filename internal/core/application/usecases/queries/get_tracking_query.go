package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetTrackingQueryIsNotConstructed = errors.New("GetTrackingQuery must be created via NewGetTrackingQuery constructor")

// GetTrackingQuery renders the public tracking page of an order.
type GetTrackingQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetTrackingQuery(orderID kernel.UUID) (GetTrackingQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetTrackingQuery{}, err
	}
	return GetTrackingQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingQueryIsNotConstructed)
}

func (q GetTrackingQuery) OrderID() kernel.UUID { return q.orderID }

// TrackingView is what a buyer sees while the order travels. Distance and arrival are
// only present while an agent holds the order and the agent position is known.
type TrackingView struct {
	OrderID             string             `json:"orderId"`
	OrderNumber         string             `json:"orderNumber"`
	Status              string             `json:"status"`
	Journey             []StageView        `json:"deliveryJourney,omitempty"`
	CurrentStage        int                `json:"currentStage"`
	EstimatedDelivery   *time.Time         `json:"estimatedDelivery,omitempty"`
	Agent               *TrackingAgentView `json:"agent,omitempty"`
	DistanceRemainingKm *float64           `json:"distanceRemaining,omitempty"`
	EstimatedArrival    *time.Time         `json:"estimatedArrival,omitempty"`
	Stations            *TrackingStations  `json:"stations,omitempty"`
	CreatedAt           time.Time          `json:"createdAt"`
	UpdatedAt           time.Time          `json:"updatedAt"`
}

type TrackingAgentView struct {
	Name            string     `json:"name"`
	Phone           string     `json:"phone"`
	VehicleType     string     `json:"vehicleType"`
	CurrentLocation *PointView `json:"currentLocation,omitempty"`
}

type TrackingStations struct {
	FulfillmentCenter *StationView `json:"fulfillmentCenter,omitempty"`
	RegionalHub       *StationView `json:"regionalHub,omitempty"`
	LocalStation      *StationView `json:"localStation,omitempty"`
}
