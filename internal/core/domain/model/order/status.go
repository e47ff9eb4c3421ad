package order

import (
	"errors"
	"fmt"

	"storefront/internal/pkg/errs"
)

// ErrInvalidStatus is returned when a status is outside the allowed set.
var ErrInvalidStatus = errors.New("invalid status")

// Status is the lifecycle state of an order. See the package documentation for the
// transitions.
type Status string

// Customer-facing statuses. Only these can be set through UpdateStatus.
const (
	OrderPlaced    Status = "order_placed"
	Shipped        Status = "shipped"
	OutForDelivery Status = "out_for_delivery"
	Delivered      Status = "delivered"
	Cancelled      Status = "cancelled"
)

// Fine-grained statuses produced by journey planning, stage advancement and the
// agent lifecycle.
const (
	FulfillmentProcessing Status = "fulfillment_processing"
	RegionalTransit       Status = "regional_transit"
	LocalStation          Status = "local_station"
	WaitingForAgent       Status = "waiting_for_agent"
	AgentAssigned         Status = "agent_assigned"
	PickedUp              Status = "picked_up"
	OnTheWay              Status = "on_the_way"
	InTransit             Status = "in_transit"
)

var manualStatuses = map[Status]struct{}{
	OrderPlaced:    {},
	Shipped:        {},
	OutForDelivery: {},
	Delivered:      {},
	Cancelled:      {},
}

var allStatuses = map[Status]struct{}{
	OrderPlaced:           {},
	Shipped:               {},
	OutForDelivery:        {},
	Delivered:             {},
	Cancelled:             {},
	FulfillmentProcessing: {},
	RegionalTransit:       {},
	LocalStation:          {},
	WaitingForAgent:       {},
	AgentAssigned:         {},
	PickedUp:              {},
	OnTheWay:              {},
	InTransit:             {},
}

var descriptions = map[Status]string{
	OrderPlaced:    "Your order has been confirmed",
	Shipped:        "Your package is on its way",
	OutForDelivery: "Your package is out for delivery",
	Delivered:      "Your package has been delivered",
	Cancelled:      "Order has been cancelled",
	AgentAssigned:  "A delivery agent has been assigned",
	PickedUp:       "Your package has been picked up by the delivery agent",
	OnTheWay:       "Your delivery agent is on the way",
}

// ParseStatus converts s into a Status, accepting every known value.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// ParseManualStatus converts s into one of the customer-facing statuses that an
// administrator may set directly.
//
// Example:
//
//	status, err := order.ParseManualStatus("shipped")
//	if errors.Is(err, order.ErrInvalidStatus) {
//	    // reject the request
//	}
func ParseManualStatus(s string) (Status, error) {
	status := Status(s)
	if _, ok := manualStatuses[status]; !ok {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%w: %q is not one of order_placed, shipped, out_for_delivery, delivered, cancelled",
				ErrInvalidStatus, s),
		)
	}
	return status, nil
}

// Validate returns an error wrapping ErrInvalidStatus for unknown values.
func (s Status) Validate() error {
	if _, ok := allStatuses[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%w: %q", ErrInvalidStatus, string(s)))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}

// IsFinal reports whether no further transitions are expected.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}

// IsAgentHeld reports whether a delivery agent currently holds the order.
// The live tracking cache is only maintained in these statuses.
func (s Status) IsAgentHeld() bool {
	return s == AgentAssigned || s == PickedUp || s == OnTheWay
}

// Coarse maps the status onto the customer-facing set.
func (s Status) Coarse() Status {
	switch s {
	case OrderPlaced, Shipped, OutForDelivery, Delivered, Cancelled:
		return s
	case OnTheWay:
		return OutForDelivery
	case FulfillmentProcessing, RegionalTransit, LocalStation, WaitingForAgent, AgentAssigned, PickedUp, InTransit:
		return Shipped
	default:
		return s
	}
}

// Description returns the default status history text for s.
func (s Status) Description() string {
	if d, ok := descriptions[s]; ok {
		return d
	}
	return "Status updated"
}
