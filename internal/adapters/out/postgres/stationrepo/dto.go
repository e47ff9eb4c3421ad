// Package stationrepo persists the delivery network.
package stationrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/station"

	"github.com/google/uuid"
)

// StationDTO represents the database structure for stations.
type StationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Address     string    `gorm:"type:varchar(512)"`
	City        string    `gorm:"type:varchar(255);not null;index:idx_stations_type_city"`
	Type        string    `gorm:"type:varchar(32);not null;index:idx_stations_type_city"`
	Latitude    float64   `gorm:"not null"`
	Longitude   float64   `gorm:"not null"`
	Capacity    int       `gorm:"not null"`
	CurrentLoad int       `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for stations.
func (StationDTO) TableName() string {
	return "stations"
}

func fromDomain(s *station.Station) StationDTO {
	return StationDTO{
		ID:          s.ID().Bytes(),
		Name:        s.Name(),
		Address:     s.Address(),
		City:        s.City(),
		Type:        string(s.Type()),
		Latitude:    s.Coordinates().Latitude(),
		Longitude:   s.Coordinates().Longitude(),
		Capacity:    s.Capacity(),
		CurrentLoad: s.CurrentLoad(),
		CreatedAt:   s.CreatedAt(),
	}
}

func toDomain(dto StationDTO) (*station.Station, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	point, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}
	return station.RestoreStation(id, dto.Name, dto.Address, dto.City, station.Type(dto.Type),
		point, dto.Capacity, dto.CurrentLoad, dto.CreatedAt)
}
