package order

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ShippingAddress is where the order is delivered. Coordinates are optional and only
// used for the live distance and ETA estimate.
type ShippingAddress struct {
	fullName    string
	address     string
	city        string
	state       string
	zipCode     string
	coordinates *kernel.GeoPoint
}

// NewShippingAddress requires fullName and address. City is only required once the
// order is routed.
func NewShippingAddress(fullName, address, city, state, zipCode string, coordinates *kernel.GeoPoint) (ShippingAddress, error) {
	var nameErr, addrErr, coordErr error
	if strings.TrimSpace(fullName) == "" {
		nameErr = errs.NewValueIsRequiredError("fullName")
	}
	if strings.TrimSpace(address) == "" {
		addrErr = errs.NewValueIsRequiredError("address")
	}
	if coordinates != nil {
		coordErr = coordinates.Validate()
	}
	if err := errors.Join(nameErr, addrErr, coordErr); err != nil {
		return ShippingAddress{}, err
	}

	return ShippingAddress{
		fullName:    fullName,
		address:     address,
		city:        city,
		state:       state,
		zipCode:     zipCode,
		coordinates: coordinates,
	}, nil
}

func (a ShippingAddress) FullName() string              { return a.fullName }
func (a ShippingAddress) Address() string               { return a.address }
func (a ShippingAddress) City() string                  { return a.city }
func (a ShippingAddress) State() string                 { return a.state }
func (a ShippingAddress) ZipCode() string               { return a.zipCode }
func (a ShippingAddress) Coordinates() *kernel.GeoPoint { return a.coordinates }

// NormalizedCity returns the city trimmed and lower-cased, the form stations are
// registered under.
func (a ShippingAddress) NormalizedCity() string {
	return strings.ToLower(strings.TrimSpace(a.city))
}
