// Package agentrepo persists delivery agents.
package agentrepo

import (
	"time"

	"storefront/internal/core/domain/model/agent"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AgentDTO represents the database structure for delivery agents.
type AgentDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name              string     `gorm:"type:varchar(255);not null"`
	Phone             string     `gorm:"type:varchar(64);not null"`
	VehicleType       string     `gorm:"type:varchar(64)"`
	LicenseNumber     string     `gorm:"type:varchar(64)"`
	StationID         *uuid.UUID `gorm:"type:uuid;index:idx_agents_station_status"`
	Status            string     `gorm:"type:varchar(16);not null;index:idx_agents_station_status"`
	Latitude          *float64
	Longitude         *float64
	LocationUpdatedAt *time.Time
	CurrentOrderID    *uuid.UUID `gorm:"type:uuid"`
	TotalDeliveries   int        `gorm:"not null;default:0"`
	Rating            float64    `gorm:"not null"`
	CreatedAt         time.Time  `gorm:"not null;index"`
	Version           int64      `gorm:"not null;default:0"`
}

// TableName specifies the database table name for agents.
func (AgentDTO) TableName() string {
	return "delivery_agents"
}

func fromDomain(a *agent.Agent) AgentDTO {
	dto := AgentDTO{
		ID:              a.ID().Bytes(),
		Name:            a.Name(),
		Phone:           a.Phone(),
		VehicleType:     a.VehicleType(),
		LicenseNumber:   a.LicenseNumber(),
		Status:          string(a.Status()),
		TotalDeliveries: a.TotalDeliveries(),
		Rating:          a.Rating(),
		CreatedAt:       a.CreatedAt(),
		Version:         a.Version(),
	}
	if id := a.StationID(); id != nil {
		raw := id.Bytes()
		dto.StationID = &raw
	}
	if id := a.CurrentOrder(); id != nil {
		raw := id.Bytes()
		dto.CurrentOrderID = &raw
	}
	if loc := a.Location(); loc != nil {
		lat, lon, at := loc.Point.Latitude(), loc.Point.Longitude(), loc.ReportedAt
		dto.Latitude, dto.Longitude, dto.LocationUpdatedAt = &lat, &lon, &at
	}
	return dto
}

func toDomain(dto AgentDTO) (*agent.Agent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	stationID, err := optionalID(dto.StationID)
	if err != nil {
		return nil, err
	}
	currentOrder, err := optionalID(dto.CurrentOrderID)
	if err != nil {
		return nil, err
	}

	var location *agent.Location
	if dto.Latitude != nil && dto.Longitude != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if pointErr != nil {
			return nil, pointErr
		}
		location = &agent.Location{Point: point}
		if dto.LocationUpdatedAt != nil {
			location.ReportedAt = *dto.LocationUpdatedAt
		}
	}

	return agent.RestoreAgent(agent.RestoreParams{
		ID:              id,
		Name:            dto.Name,
		Phone:           dto.Phone,
		VehicleType:     dto.VehicleType,
		LicenseNumber:   dto.LicenseNumber,
		StationID:       stationID,
		Status:          agent.Status(dto.Status),
		Location:        location,
		CurrentOrder:    currentOrder,
		TotalDeliveries: dto.TotalDeliveries,
		Rating:          dto.Rating,
		CreatedAt:       dto.CreatedAt,
		Version:         dto.Version,
	})
}

func optionalID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
