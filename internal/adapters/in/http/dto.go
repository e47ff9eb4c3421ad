package http

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

type pointDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (p pointDTO) toDomain() (kernel.GeoPoint, error) {
	return kernel.NewGeoPoint(p.Latitude, p.Longitude)
}

type createdResponse struct {
	ID string `json:"id"`
}

type addProductRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Image string `json:"image"`
	Stock int    `json:"stock"`
}

type addCartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type orderLineDTO struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type shippingAddressDTO struct {
	FullName    string    `json:"fullName"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	ZipCode     string    `json:"zipCode"`
	Coordinates *pointDTO `json:"coordinates"`
}

type placeOrderRequest struct {
	Items           []orderLineDTO     `json:"items"`
	ShippingAddress shippingAddressDTO `json:"shippingAddress"`
	PaymentMethod   string             `json:"paymentMethod"`
}

type placeOrderResponse struct {
	ID          string    `json:"id"`
	OrderNumber string    `json:"orderNumber"`
	Status      string    `json:"status"`
	TotalAmount int64     `json:"totalAmount"`
	CreatedAt   time.Time `json:"createdAt"`
}

type updateStatusRequest struct {
	Status      string `json:"status"`
	Description string `json:"description"`
}

type requestReturnRequest struct {
	ProductID string `json:"productId"`
}

type returnOutcomeResponse struct {
	ProductID    string `json:"productId"`
	ItemName     string `json:"itemName"`
	Quantity     int    `json:"quantity"`
	RefundAmount int64  `json:"refundAmount"`
}

type registerStationRequest struct {
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	Type        string   `json:"type"`
	Coordinates pointDTO `json:"coordinates"`
}

type registerAgentRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	VehicleType   string `json:"vehicleType"`
	LicenseNumber string `json:"licenseNumber"`
	StationID     string `json:"stationId"`
}

type stageDTO struct {
	Name          string     `json:"stage"`
	Location      string     `json:"location"`
	Address       string     `json:"address,omitempty"`
	Status        string     `json:"status"`
	EstimatedTime time.Time  `json:"estimatedTime"`
	StartedAt     *time.Time `json:"startedAt,omitempty"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	Description   string     `json:"description"`
}

func newStageDTO(s order.Stage) stageDTO {
	return stageDTO{
		Name:          string(s.Name()),
		Location:      s.Location(),
		Address:       s.Address(),
		Status:        string(s.Status()),
		EstimatedTime: s.EstimatedTime(),
		StartedAt:     s.StartedAt(),
		CompletedAt:   s.CompletedAt(),
		Description:   s.Description(),
	}
}

type journeyResponse struct {
	Stages            []stageDTO `json:"deliveryJourney"`
	CurrentStage      int        `json:"currentStage"`
	EstimatedDelivery time.Time  `json:"estimatedDelivery"`
}

func newJourneyResponse(j order.Journey) journeyResponse {
	stages := j.Stages()
	resp := journeyResponse{
		Stages:            make([]stageDTO, 0, len(stages)),
		CurrentStage:      j.CurrentIndex(),
		EstimatedDelivery: j.EstimatedDelivery(),
	}
	for _, s := range stages {
		resp.Stages = append(resp.Stages, newStageDTO(s))
	}
	return resp
}

type transitionResponse struct {
	From         stageDTO `json:"previousStage"`
	To           stageDTO `json:"currentStage"`
	CurrentIndex int      `json:"currentStageIndex"`
	Status       string   `json:"status"`
}

type agentContactResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type completeRequest struct {
	DeliveryProof string `json:"deliveryProof"`
}

type dataResponse[T any] struct {
	Data []T `json:"data"`
}
