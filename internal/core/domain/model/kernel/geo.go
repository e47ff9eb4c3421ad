package kernel

import (
	"errors"
	"math"

	"storefront/internal/pkg/errs"
)

const (
	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0

	// EarthRadiusKm is the mean Earth radius used by the haversine formula.
	EarthRadiusKm = 6371.0
)

// ErrGeoPointIsNotConstructed is returned when a GeoPoint was not created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errors.New("GeoPoint must be created via NewGeoPoint constructor")

// GeoPoint is a WGS84 coordinate pair. It locates stations, moving agents and,
// optionally, the customer's shipping address.
//
// The zero value is invalid; use NewGeoPoint.
type GeoPoint struct {
	latitude      float64
	longitude     float64
	isConstructed bool
}

// NewGeoPoint creates a GeoPoint after checking both coordinates against their ranges.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(40.7128, -74.0060)
//	if err != nil {
//	    return err
//	}
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	var latErr, lonErr error
	if math.IsNaN(latitude) || latitude < minLatitude || latitude > maxLatitude {
		latErr = errs.NewValueIsOutOfRangeError("latitude", latitude, minLatitude, maxLatitude)
	}
	if math.IsNaN(longitude) || longitude < minLongitude || longitude > maxLongitude {
		lonErr = errs.NewValueIsOutOfRangeError("longitude", longitude, minLongitude, maxLongitude)
	}
	if err := errors.Join(latErr, lonErr); err != nil {
		return GeoPoint{}, err
	}

	return GeoPoint{
		latitude:      latitude,
		longitude:     longitude,
		isConstructed: true,
	}, nil
}

// Latitude returns the latitude in degrees.
func (g GeoPoint) Latitude() float64 {
	return g.latitude
}

// Longitude returns the longitude in degrees.
func (g GeoPoint) Longitude() float64 {
	return g.longitude
}

// IsEqual reports whether both points carry the same coordinates.
func (g GeoPoint) IsEqual(other GeoPoint) bool {
	return g.latitude == other.latitude && g.longitude == other.longitude
}

// Validate returns ErrGeoPointIsNotConstructed for the zero value.
func (g GeoPoint) Validate() error {
	if !g.isConstructed {
		return ErrGeoPointIsNotConstructed
	}
	return nil
}

// DistanceKm returns the great-circle distance to other in kilometres.
//
// Example:
//
//	nyc, _ := kernel.NewGeoPoint(40.7128, -74.0060)
//	la, _ := kernel.NewGeoPoint(34.0522, -118.2437)
//	nyc.DistanceKm(la) // ~3936
func (g GeoPoint) DistanceKm(other GeoPoint) float64 {
	lat1 := toRadians(g.latitude)
	lat2 := toRadians(other.latitude)
	dLat := toRadians(other.latitude - g.latitude)
	dLon := toRadians(other.longitude - g.longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
