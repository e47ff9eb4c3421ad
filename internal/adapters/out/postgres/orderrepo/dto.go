// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// The order aggregate is stored as one orders row plus child tables for items, journey
// stages, return requests and status history.
package orderrepo

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID   `gorm:"type:uuid;not null;index"`
	TotalAmount   int64       `gorm:"not null;check:chk_orders_total,total_amount >= 0"`
	Status        string      `gorm:"type:varchar(32);not null;index"`
	PaymentMethod string      `gorm:"type:varchar(64);not null"`
	Shipping      AddressDTO  `gorm:"embedded;embeddedPrefix:shipping_"`
	CurrentStage  *int        `gorm:"type:int"`
	Stations      StationsDTO `gorm:"embedded;embeddedPrefix:station_"`
	AgentID       *uuid.UUID  `gorm:"type:uuid;index"`
	AgentName     string      `gorm:"type:varchar(255)"`
	AgentPhone    string      `gorm:"type:varchar(64)"`
	Tracking      TrackingDTO `gorm:"embedded;embeddedPrefix:tracking_"`
	DeliveryProof string
	AssignedAt    *time.Time
	PickedUpAt    *time.Time
	OnTheWayAt    *time.Time
	DeliveredAt   *time.Time
	CreatedAt     time.Time `gorm:"not null;index"`
	UpdatedAt     time.Time `gorm:"not null;autoUpdateTime:false"`
	Version       int64     `gorm:"not null;default:0"`

	Items   []ItemDTO        `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Stages  []StageDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Returns []ReturnDTO      `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History []StatusEntryDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO is the embedded shipping address. Coordinates are optional.
type AddressDTO struct {
	FullName  string `gorm:"type:varchar(255);not null"`
	Address   string `gorm:"type:varchar(512);not null"`
	City      string `gorm:"type:varchar(255)"`
	State     string `gorm:"type:varchar(255)"`
	ZipCode   string `gorm:"type:varchar(32)"`
	Latitude  *float64
	Longitude *float64
}

// StationsDTO holds the station references chosen at planning time.
type StationsDTO struct {
	FulfillmentCenterID *uuid.UUID `gorm:"type:uuid"`
	RegionalHubID       *uuid.UUID `gorm:"type:uuid"`
	LocalStationID      *uuid.UUID `gorm:"type:uuid"`
}

// TrackingDTO is the embedded live tracking cache.
type TrackingDTO struct {
	AgentLatitude       *float64
	AgentLongitude      *float64
	DistanceRemainingKm *float64
	EstimatedArrival    *time.Time
	LastUpdate          *time.Time
}

// ItemDTO is one order line. A product appears at most once per order.
type ItemDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Price     int64     `gorm:"not null"`
	Quantity  int       `gorm:"not null"`
	Image     string
}

// TableName specifies the database table name for order lines.
func (ItemDTO) TableName() string {
	return "order_items"
}

// StageDTO is one journey stage.
type StageDTO struct {
	OrderID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position      int       `gorm:"primaryKey"`
	Name          string    `gorm:"type:varchar(64);not null"`
	Location      string    `gorm:"type:varchar(255)"`
	Address       string    `gorm:"type:varchar(512)"`
	Status        string    `gorm:"type:varchar(16);not null"`
	EstimatedTime time.Time `gorm:"not null"`
	StartedAt     *time.Time
	CompletedAt   *time.Time
	Description   string
}

// TableName specifies the database table name for journey stages.
func (StageDTO) TableName() string {
	return "order_stages"
}

// ReturnDTO is a return request keyed by product.
type ReturnDTO struct {
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status      string    `gorm:"type:varchar(16);not null"`
	RequestedAt time.Time `gorm:"not null"`
	ApprovedAt  *time.Time
}

// TableName specifies the database table name for return requests.
func (ReturnDTO) TableName() string {
	return "order_returns"
}

// StatusEntryDTO is one status history line.
type StatusEntryDTO struct {
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position    int       `gorm:"primaryKey"`
	Status      string    `gorm:"type:varchar(32);not null"`
	Timestamp   time.Time `gorm:"not null"`
	Description string
}

// TableName specifies the database table name for status history.
func (StatusEntryDTO) TableName() string {
	return "order_status_history"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	id := o.ID().Bytes()
	address := o.ShippingAddress()

	dto := OrderDTO{
		ID:            id,
		UserID:        o.UserID().Bytes(),
		TotalAmount:   o.TotalAmount().Cents(),
		Status:        o.Status().String(),
		PaymentMethod: o.PaymentMethod(),
		Shipping: AddressDTO{
			FullName: address.FullName(),
			Address:  address.Address(),
			City:     address.City(),
			State:    address.State(),
			ZipCode:  address.ZipCode(),
		},
		DeliveryProof: o.DeliveryProof(),
		AssignedAt:    o.AssignedAt(),
		PickedUpAt:    o.PickedUpAt(),
		OnTheWayAt:    o.OnTheWayAt(),
		DeliveredAt:   o.DeliveredAt(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
		Version:       o.Version(),
	}
	if c := address.Coordinates(); c != nil {
		lat, lon := c.Latitude(), c.Longitude()
		dto.Shipping.Latitude, dto.Shipping.Longitude = &lat, &lon
	}

	if s := o.AssignedStations(); s != nil {
		fc, ls := s.FulfillmentCenter().Bytes(), s.LocalStation().Bytes()
		dto.Stations.FulfillmentCenterID = &fc
		dto.Stations.LocalStationID = &ls
		if hub := s.RegionalHub(); hub != nil {
			raw := hub.Bytes()
			dto.Stations.RegionalHubID = &raw
		}
	}

	if a := o.Agent(); a != nil {
		raw := a.ID().Bytes()
		dto.AgentID = &raw
		dto.AgentName = a.Name()
		dto.AgentPhone = a.Phone()
	}

	tracking := o.Tracking()
	if loc := tracking.AgentLocation(); loc != nil {
		lat, lon := loc.Latitude(), loc.Longitude()
		dto.Tracking.AgentLatitude, dto.Tracking.AgentLongitude = &lat, &lon
	}
	dto.Tracking.DistanceRemainingKm = tracking.DistanceRemainingKm()
	dto.Tracking.EstimatedArrival = tracking.EstimatedArrival()
	dto.Tracking.LastUpdate = tracking.LastUpdate()

	for i, item := range o.Items() {
		dto.Items = append(dto.Items, ItemDTO{
			OrderID:   id,
			ProductID: item.ProductID().Bytes(),
			Position:  i,
			Name:      item.Name(),
			Price:     item.Price().Cents(),
			Quantity:  item.Quantity(),
			Image:     item.Image(),
		})
	}

	if j := o.Journey(); j != nil {
		current := j.CurrentIndex()
		dto.CurrentStage = &current
		for i, s := range j.Stages() {
			dto.Stages = append(dto.Stages, StageDTO{
				OrderID:       id,
				Position:      i,
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
	}

	for _, r := range o.Returns() {
		dto.Returns = append(dto.Returns, ReturnDTO{
			OrderID:     id,
			ProductID:   r.ProductID().Bytes(),
			Status:      string(r.Status()),
			RequestedAt: r.RequestedAt(),
			ApprovedAt:  r.ApprovedAt(),
		})
	}

	for i, e := range o.StatusHistory() {
		dto.History = append(dto.History, StatusEntryDTO{
			OrderID:     id,
			Position:    i,
			Status:      e.Status().String(),
			Timestamp:   e.Timestamp(),
			Description: e.Description(),
		})
	}

	return dto
}

// toDomain converts a database DTO, with its children preloaded in position order,
// back to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	coordinates, err := optionalPoint(dto.Shipping.Latitude, dto.Shipping.Longitude)
	if err != nil {
		return nil, err
	}
	address, err := order.NewShippingAddress(dto.Shipping.FullName, dto.Shipping.Address,
		dto.Shipping.City, dto.Shipping.State, dto.Shipping.ZipCode, coordinates)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, it := range dto.Items {
		productID, idErr := kernel.UUIDFromBytes(it.ProductID[:])
		if idErr != nil {
			return nil, idErr
		}
		item, itemErr := order.NewItem(productID, it.Name, kernel.Money(it.Price), it.Quantity, it.Image)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	journey, err := journeyToDomain(dto)
	if err != nil {
		return nil, err
	}
	stations, err := stationsToDomain(dto.Stations)
	if err != nil {
		return nil, err
	}

	var agent *order.AgentContact
	if dto.AgentID != nil {
		agentID, idErr := kernel.UUIDFromBytes((*dto.AgentID)[:])
		if idErr != nil {
			return nil, idErr
		}
		contact, contactErr := order.NewAgentContact(agentID, dto.AgentName, dto.AgentPhone)
		if contactErr != nil {
			return nil, contactErr
		}
		agent = &contact
	}

	returns := make([]order.ReturnRequest, 0, len(dto.Returns))
	for _, r := range dto.Returns {
		productID, idErr := kernel.UUIDFromBytes(r.ProductID[:])
		if idErr != nil {
			return nil, idErr
		}
		returns = append(returns, order.RestoreReturnRequest(productID, order.ReturnStatus(r.Status), r.RequestedAt, r.ApprovedAt))
	}

	history := make([]order.StatusEntry, 0, len(dto.History))
	for _, h := range dto.History {
		history = append(history, order.RestoreStatusEntry(order.Status(h.Status), h.Timestamp, h.Description))
	}

	agentLocation, err := optionalPoint(dto.Tracking.AgentLatitude, dto.Tracking.AgentLongitude)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:            id,
		UserID:        userID,
		Items:         items,
		TotalAmount:   kernel.Money(dto.TotalAmount),
		Status:        status,
		Address:       address,
		PaymentMethod: dto.PaymentMethod,
		Journey:       journey,
		Stations:      stations,
		Agent:         agent,
		Returns:       returns,
		History:       history,
		Tracking: order.RestoreTracking(agentLocation, dto.Tracking.DistanceRemainingKm,
			dto.Tracking.EstimatedArrival, dto.Tracking.LastUpdate),
		DeliveryProof: dto.DeliveryProof,
		AssignedAt:    dto.AssignedAt,
		PickedUpAt:    dto.PickedUpAt,
		OnTheWayAt:    dto.OnTheWayAt,
		DeliveredAt:   dto.DeliveredAt,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
		Version:       dto.Version,
	})
}

func journeyToDomain(dto OrderDTO) (*order.Journey, error) {
	if dto.CurrentStage == nil {
		return nil, nil
	}

	stages := make([]order.Stage, 0, len(dto.Stages))
	for _, s := range dto.Stages {
		stage, err := order.RestoreStage(order.StageName(s.Name), s.Location, s.Address,
			order.StageStatus(s.Status), s.EstimatedTime, s.StartedAt, s.CompletedAt, s.Description)
		if err != nil {
			return nil, err
		}
		stages = append(stages, stage)
	}

	journey, err := order.RestoreJourney(stages, *dto.CurrentStage)
	if err != nil {
		return nil, err
	}
	return &journey, nil
}

func stationsToDomain(dto StationsDTO) (*order.AssignedStations, error) {
	if dto.FulfillmentCenterID == nil || dto.LocalStationID == nil {
		return nil, nil
	}

	fc, fcErr := kernel.UUIDFromBytes(dto.FulfillmentCenterID[:])
	ls, lsErr := kernel.UUIDFromBytes(dto.LocalStationID[:])
	if err := errors.Join(fcErr, lsErr); err != nil {
		return nil, err
	}

	var hub *kernel.UUID
	if dto.RegionalHubID != nil {
		id, err := kernel.UUIDFromBytes(dto.RegionalHubID[:])
		if err != nil {
			return nil, err
		}
		hub = &id
	}

	stations, err := order.NewAssignedStations(fc, hub, ls)
	if err != nil {
		return nil, err
	}
	return &stations, nil
}

func optionalPoint(lat, lon *float64) (*kernel.GeoPoint, error) {
	if lat == nil || lon == nil {
		return nil, nil
	}
	point, err := kernel.NewGeoPoint(*lat, *lon)
	if err != nil {
		return nil, err
	}
	return &point, nil
}
