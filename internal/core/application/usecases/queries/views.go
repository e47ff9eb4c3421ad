package queries

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/station"
)

// PointView is a latitude/longitude pair.
type PointView struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// OrderView is the full read model of one order.
type OrderView struct {
	ID                string            `json:"id"`
	OrderNumber       string            `json:"orderNumber"`
	UserID            string            `json:"userId"`
	Items             []ItemView        `json:"items"`
	TotalAmount       int64             `json:"totalAmount"`
	Status            string            `json:"status"`
	PaymentMethod     string            `json:"paymentMethod"`
	ShippingAddress   AddressView       `json:"shippingAddress"`
	StatusHistory     []StatusEntryView `json:"statusHistory"`
	Returns           []ReturnView      `json:"returnRequests"`
	Journey           []StageView       `json:"deliveryJourney,omitempty"`
	CurrentStage      *int              `json:"currentStage,omitempty"`
	EstimatedDelivery *time.Time        `json:"estimatedDelivery,omitempty"`
	Agent             *AgentContactView `json:"agent,omitempty"`
	DeliveryProof     string            `json:"deliveryProof,omitempty"`
	AssignedAt        *time.Time        `json:"assignedAt,omitempty"`
	PickedUpAt        *time.Time        `json:"pickedUpAt,omitempty"`
	OnTheWayAt        *time.Time        `json:"onTheWayAt,omitempty"`
	DeliveredAt       *time.Time        `json:"deliveredAt,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

type ItemView struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image,omitempty"`
	LineTotal int64  `json:"lineTotal"`
}

type AddressView struct {
	FullName string     `json:"fullName"`
	Address  string     `json:"address"`
	City     string     `json:"city"`
	State    string     `json:"state"`
	ZipCode  string     `json:"zipCode"`
	Location *PointView `json:"coordinates,omitempty"`
}

type StatusEntryView struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
}

type ReturnView struct {
	ProductID   string     `json:"productId"`
	Status      string     `json:"status"`
	RequestedAt time.Time  `json:"requestedAt"`
	ApprovedAt  *time.Time `json:"approvedAt,omitempty"`
}

type StageView struct {
	Name          string     `json:"stage"`
	Location      string     `json:"location"`
	Address       string     `json:"address,omitempty"`
	Status        string     `json:"status"`
	EstimatedTime time.Time  `json:"estimatedTime"`
	StartedAt     *time.Time `json:"startedAt,omitempty"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	Description   string     `json:"description"`
}

type AgentContactView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// StationView is one node of the delivery network.
type StationView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Type        string    `json:"type"`
	Location    PointView `json:"coordinates"`
	Capacity    int       `json:"capacity"`
	CurrentLoad int       `json:"currentLoad"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newOrderView(o *order.Order) OrderView {
	address := o.ShippingAddress()
	view := OrderView{
		ID:            o.ID().String(),
		OrderNumber:   o.OrderNumber(),
		UserID:        o.UserID().String(),
		TotalAmount:   o.TotalAmount().Cents(),
		Status:        o.Status().String(),
		PaymentMethod: o.PaymentMethod(),
		ShippingAddress: AddressView{
			FullName: address.FullName(),
			Address:  address.Address(),
			City:     address.City(),
			State:    address.State(),
			ZipCode:  address.ZipCode(),
			Location: newPointView(address.Coordinates()),
		},
		DeliveryProof: o.DeliveryProof(),
		AssignedAt:    o.AssignedAt(),
		PickedUpAt:    o.PickedUpAt(),
		OnTheWayAt:    o.OnTheWayAt(),
		DeliveredAt:   o.DeliveredAt(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}

	for _, item := range o.Items() {
		view.Items = append(view.Items, ItemView{
			ProductID: item.ProductID().String(),
			Name:      item.Name(),
			Price:     item.Price().Cents(),
			Quantity:  item.Quantity(),
			Image:     item.Image(),
			LineTotal: item.LineTotal().Cents(),
		})
	}
	view.StatusHistory = make([]StatusEntryView, 0, len(o.StatusHistory()))
	for _, entry := range o.StatusHistory() {
		view.StatusHistory = append(view.StatusHistory, StatusEntryView{
			Status:      entry.Status().String(),
			Timestamp:   entry.Timestamp(),
			Description: entry.Description(),
		})
	}
	view.Returns = make([]ReturnView, 0, len(o.Returns()))
	for _, r := range o.Returns() {
		view.Returns = append(view.Returns, ReturnView{
			ProductID:   r.ProductID().String(),
			Status:      string(r.Status()),
			RequestedAt: r.RequestedAt(),
			ApprovedAt:  r.ApprovedAt(),
		})
	}

	if journey := o.Journey(); journey != nil {
		view.Journey = newStageViews(*journey)
		current := journey.CurrentIndex()
		view.CurrentStage = &current
		eta := journey.EstimatedDelivery()
		view.EstimatedDelivery = &eta
	}
	if contact := o.Agent(); contact != nil {
		view.Agent = &AgentContactView{
			ID:    contact.ID().String(),
			Name:  contact.Name(),
			Phone: contact.Phone(),
		}
	}

	return view
}

func newStageViews(journey order.Journey) []StageView {
	stages := journey.Stages()
	views := make([]StageView, 0, len(stages))
	for _, s := range stages {
		views = append(views, StageView{
			Name:          string(s.Name()),
			Location:      s.Location(),
			Address:       s.Address(),
			Status:        string(s.Status()),
			EstimatedTime: s.EstimatedTime(),
			StartedAt:     s.StartedAt(),
			CompletedAt:   s.CompletedAt(),
			Description:   s.Description(),
		})
	}
	return views
}

func newStationView(s *station.Station) StationView {
	point := s.Coordinates()
	return StationView{
		ID:          s.ID().String(),
		Name:        s.Name(),
		Address:     s.Address(),
		City:        s.City(),
		Type:        string(s.Type()),
		Location:    PointView{Latitude: point.Latitude(), Longitude: point.Longitude()},
		Capacity:    s.Capacity(),
		CurrentLoad: s.CurrentLoad(),
		CreatedAt:   s.CreatedAt(),
	}
}

func newPointView(p *kernel.GeoPoint) *PointView {
	if p == nil {
		return nil
	}
	return &PointView{Latitude: p.Latitude(), Longitude: p.Longitude()}
}
