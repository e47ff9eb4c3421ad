// Package station models the delivery network: fulfillment centers, regional hubs and
// local stations. Stations are registered once and only read by routing.
package station

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// DefaultCapacity is the capacity given to newly registered stations.
const DefaultCapacity = 1000

var ErrStationIsNotConstructed = errors.New("Station must be created via NewStation constructor")

// Type is the role of a station in the network.
type Type string

const (
	FulfillmentCenter Type = "fulfillment_center"
	RegionalHub       Type = "regional_hub"
	LocalStation      Type = "local_station"
)

// ParseType validates a station type.
func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case FulfillmentCenter, RegionalHub, LocalStation:
		return t, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("type",
			fmt.Errorf("%q is not one of fulfillment_center, regional_hub, local_station", s))
	}
}

// Station is a node of the delivery network.
type Station struct {
	id            kernel.UUID
	name          string
	address       string
	city          string
	stationType   Type
	coordinates   kernel.GeoPoint
	capacity      int
	currentLoad   int
	createdAt     time.Time
	isConstructed bool
}

// NewStation registers a station. The city is stored trimmed and lower-cased so routing
// can match it exactly; capacity starts at DefaultCapacity with no load.
//
// Example:
//
//	point, _ := kernel.NewGeoPoint(30.2672, -97.7431)
//	s, err := station.NewStation(kernel.NewUUID(), "Austin Local", "9 Depot Rd", "Austin",
//	    station.LocalStation, point, time.Now())
func NewStation(
	id kernel.UUID,
	name, address, city string,
	stationType Type,
	coordinates kernel.GeoPoint,
	now time.Time,
) (*Station, error) {
	return RestoreStation(id, name, address, city, stationType, coordinates, DefaultCapacity, 0, now)
}

// RestoreStation rebuilds a station from storage.
func RestoreStation(
	id kernel.UUID,
	name, address, city string,
	stationType Type,
	coordinates kernel.GeoPoint,
	capacity, currentLoad int,
	createdAt time.Time,
) (*Station, error) {
	var nameErr, cityErr, capErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	city = strings.ToLower(strings.TrimSpace(city))
	if city == "" {
		cityErr = errs.NewValueIsRequiredError("city")
	}
	if capacity < 0 || currentLoad < 0 {
		capErr = errs.NewValueIsInvalidErrorWithCause("capacity",
			fmt.Errorf("capacity %d and load %d must not be negative", capacity, currentLoad))
	}
	_, typeErr := ParseType(string(stationType))

	if err := errors.Join(id.Validate(), nameErr, cityErr, typeErr, coordinates.Validate(), capErr); err != nil {
		return nil, err
	}

	return &Station{
		id:            id,
		name:          name,
		address:       address,
		city:          city,
		stationType:   stationType,
		coordinates:   coordinates,
		capacity:      capacity,
		currentLoad:   currentLoad,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the station was built through a constructor.
func (s *Station) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStationIsNotConstructed
	}
	return nil
}

func (s *Station) ID() kernel.UUID              { return s.id }
func (s *Station) Name() string                 { return s.name }
func (s *Station) Address() string              { return s.address }
func (s *Station) City() string                 { return s.city }
func (s *Station) Type() Type                   { return s.stationType }
func (s *Station) Coordinates() kernel.GeoPoint { return s.coordinates }
func (s *Station) Capacity() int                { return s.capacity }
func (s *Station) CurrentLoad() int             { return s.currentLoad }
func (s *Station) CreatedAt() time.Time         { return s.createdAt }
