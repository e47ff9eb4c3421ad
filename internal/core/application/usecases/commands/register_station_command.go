package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/station"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrRegisterStationCommandIsNotConstructed = errors.New(
	"RegisterStationCommand must be created via NewRegisterStationCommand constructor",
)

// RegisterStationCommand adds a station to the delivery network.
//
// Example:
//
//	point, _ := kernel.NewGeoPoint(30.2672, -97.7431)
//	cmd, err := NewRegisterStationCommand(kernel.NewUUID(), "Austin Local", "9 Depot Rd", "Austin",
//	    "local_station", point)
type RegisterStationCommand struct { //nolint:recvcheck //using for validation
	stationID   kernel.UUID
	name        string
	address     string
	city        string
	stationType station.Type
	coordinates kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewRegisterStationCommand parses the station type and checks the required fields.
func NewRegisterStationCommand(
	stationID kernel.UUID,
	name, address, city, stationType string,
	coordinates kernel.GeoPoint,
) (RegisterStationCommand, error) {
	cmd := RegisterStationCommand{
		name:        strings.TrimSpace(name),
		address:     strings.TrimSpace(address),
		city:        city,
		coordinates: coordinates,
		guard:       guard.NewConstructorGuard(),
	}

	var idErr, nameErr, typeErr, coordErr error
	if idErr = stationID.Validate(); idErr == nil {
		cmd.stationID = stationID
	}
	if cmd.name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	cmd.stationType, typeErr = station.ParseType(stationType)
	coordErr = coordinates.Validate()

	if err := errors.Join(idErr, nameErr, typeErr, coordErr); err != nil {
		return RegisterStationCommand{}, err
	}

	return cmd, nil
}

func (c RegisterStationCommand) Validate() error {
	return c.guard.Validate(ErrRegisterStationCommandIsNotConstructed)
}

func (c RegisterStationCommand) StationID() kernel.UUID       { return c.stationID }
func (c RegisterStationCommand) Name() string                 { return c.name }
func (c RegisterStationCommand) Address() string              { return c.address }
func (c RegisterStationCommand) City() string                 { return c.city }
func (c RegisterStationCommand) Type() station.Type           { return c.stationType }
func (c RegisterStationCommand) Coordinates() kernel.GeoPoint { return c.coordinates }
