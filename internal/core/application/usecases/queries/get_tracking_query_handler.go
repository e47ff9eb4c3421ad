package queries

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"go.uber.org/zap"
)

// GetTrackingQueryHandler assembles tracking views from the order, its agent and its
// stations.
//
// Views of orders that no agent holds only change with the order status, so they are
// served from the cache when one is configured. The cache is invalidated by the order
// status events. Cache failures are logged and the view is built from storage.
type GetTrackingQueryHandler struct {
	orders   OrderReader
	stations StationReader
	agents   AgentReader
	cache    TrackingCache
	speedKmh float64
	logger   *zap.Logger
}

// NewGetTrackingQueryHandler builds the handler. cache may be nil. A non-positive
// speed falls back to order.DefaultAgentSpeedKmh.
func NewGetTrackingQueryHandler(
	orders OrderReader,
	stations StationReader,
	agents AgentReader,
	cache TrackingCache,
	speedKmh float64,
	logger *zap.Logger,
) GetTrackingQueryHandler {
	if speedKmh <= 0 {
		speedKmh = order.DefaultAgentSpeedKmh
	}
	return GetTrackingQueryHandler{
		orders:   orders,
		stations: stations,
		agents:   agents,
		cache:    cache,
		speedKmh: speedKmh,
		logger:   logger.With(zap.String("component", "tracking")),
	}
}

func (h GetTrackingQueryHandler) Handle(ctx context.Context, query GetTrackingQuery) (TrackingView, error) {
	if err := query.Validate(); err != nil {
		return TrackingView{}, err
	}

	if view, ok := h.cached(ctx, query.OrderID()); ok {
		return view, nil
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return TrackingView{}, err
	}

	view := TrackingView{
		OrderID:     o.ID().String(),
		OrderNumber: o.OrderNumber(),
		Status:      o.Status().String(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
	if journey := o.Journey(); journey != nil {
		view.Journey = newStageViews(*journey)
		view.CurrentStage = journey.CurrentIndex()
		eta := journey.EstimatedDelivery()
		view.EstimatedDelivery = &eta
	}

	if err = h.addAgent(ctx, o, &view); err != nil {
		return TrackingView{}, err
	}
	if err = h.addStations(ctx, o, &view); err != nil {
		return TrackingView{}, err
	}

	if !o.Status().IsAgentHeld() {
		h.store(ctx, o.ID(), view)
	}
	return view, nil
}

func (h GetTrackingQueryHandler) addAgent(ctx context.Context, o *order.Order, view *TrackingView) error {
	contact := o.Agent()
	if contact == nil {
		return nil
	}
	a, err := h.agents.Get(ctx, contact.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	view.Agent = &TrackingAgentView{
		Name:        a.Name(),
		Phone:       a.Phone(),
		VehicleType: a.VehicleType(),
	}
	location := a.Location()
	if location == nil {
		return nil
	}
	view.Agent.CurrentLocation = newPointView(&location.Point)

	destination := o.ShippingAddress().Coordinates()
	if o.Status().IsAgentHeld() && destination != nil {
		distance, eta := order.EstimateArrival(location.Point, *destination, h.speedKmh, time.Now())
		view.DistanceRemainingKm = &distance
		view.EstimatedArrival = &eta
	}
	return nil
}

func (h GetTrackingQueryHandler) addStations(ctx context.Context, o *order.Order, view *TrackingView) error {
	assigned := o.AssignedStations()
	if assigned == nil {
		return nil
	}

	var (
		stations TrackingStations
		err      error
	)
	fc := assigned.FulfillmentCenter()
	if stations.FulfillmentCenter, err = h.station(ctx, &fc); err != nil {
		return err
	}
	if stations.RegionalHub, err = h.station(ctx, assigned.RegionalHub()); err != nil {
		return err
	}
	local := assigned.LocalStation()
	if stations.LocalStation, err = h.station(ctx, &local); err != nil {
		return err
	}
	view.Stations = &stations
	return nil
}

// station resolves a reference. Missing stations resolve to nil.
func (h GetTrackingQueryHandler) station(ctx context.Context, id *kernel.UUID) (*StationView, error) {
	if id == nil {
		return nil, nil
	}
	s, err := h.stations.Get(ctx, *id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	view := newStationView(s)
	return &view, nil
}

func (h GetTrackingQueryHandler) cached(ctx context.Context, orderID kernel.UUID) (TrackingView, bool) {
	if h.cache == nil {
		return TrackingView{}, false
	}
	payload, ok, err := h.cache.Get(ctx, orderID)
	if err != nil {
		h.logger.Warn("tracking cache read failed", zap.String("order_id", orderID.String()), zap.Error(err))
		return TrackingView{}, false
	}
	if !ok {
		return TrackingView{}, false
	}

	var view TrackingView
	if err = json.Unmarshal(payload, &view); err != nil {
		h.logger.Warn("dropping undecodable tracking view", zap.String("order_id", orderID.String()), zap.Error(err))
		return TrackingView{}, false
	}
	return view, true
}

func (h GetTrackingQueryHandler) store(ctx context.Context, orderID kernel.UUID, view TrackingView) {
	if h.cache == nil {
		return
	}
	payload, err := json.Marshal(view)
	if err != nil {
		h.logger.Warn("tracking view not cacheable", zap.String("order_id", orderID.String()), zap.Error(err))
		return
	}
	if err = h.cache.Set(ctx, orderID, payload); err != nil {
		h.logger.Warn("tracking cache write failed", zap.String("order_id", orderID.String()), zap.Error(err))
	}
}
