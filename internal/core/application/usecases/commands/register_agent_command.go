package commands

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrRegisterAgentCommandIsNotConstructed = errors.New(
	"RegisterAgentCommand must be created via NewRegisterAgentCommand constructor",
)

// RegisterAgentCommand registers a delivery agent. StationID is optional; an agent
// without a station is never picked for assignment.
type RegisterAgentCommand struct { //nolint:recvcheck //using for validation
	agentID       kernel.UUID
	name          string
	phone         string
	vehicleType   string
	licenseNumber string
	stationID     *kernel.UUID

	guard guard.ConstructorGuard
}

func NewRegisterAgentCommand(
	agentID kernel.UUID,
	name, phone, vehicleType, licenseNumber string,
	stationID *kernel.UUID,
) (RegisterAgentCommand, error) {
	cmd := RegisterAgentCommand{
		name:          strings.TrimSpace(name),
		phone:         strings.TrimSpace(phone),
		vehicleType:   vehicleType,
		licenseNumber: licenseNumber,
		guard:         guard.NewConstructorGuard(),
	}

	var idErr, nameErr, phoneErr, stationErr error
	if idErr = agentID.Validate(); idErr == nil {
		cmd.agentID = agentID
	}
	if cmd.name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if cmd.phone == "" {
		phoneErr = errs.NewValueIsRequiredError("phone")
	}
	if stationID != nil {
		if stationErr = stationID.Validate(); stationErr == nil {
			id := *stationID
			cmd.stationID = &id
		}
	}

	if err := errors.Join(idErr, nameErr, phoneErr, stationErr); err != nil {
		return RegisterAgentCommand{}, err
	}

	return cmd, nil
}

func (c RegisterAgentCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAgentCommandIsNotConstructed)
}

func (c RegisterAgentCommand) AgentID() kernel.UUID    { return c.agentID }
func (c RegisterAgentCommand) Name() string            { return c.name }
func (c RegisterAgentCommand) Phone() string           { return c.phone }
func (c RegisterAgentCommand) VehicleType() string     { return c.vehicleType }
func (c RegisterAgentCommand) LicenseNumber() string   { return c.licenseNumber }
func (c RegisterAgentCommand) StationID() *kernel.UUID { return c.stationID }
