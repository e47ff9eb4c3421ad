package kernel

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

// shortCodeLength is the number of trailing characters used for human-readable codes.
const shortCodeLength = 8

// ErrUUIDIsNotConstructed indicates that a UUID was not properly initialized through one of the constructor functions.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is a value object that represents a universally unique identifier.
// It wraps the github.com/google/uuid implementation and is used as the identifier
// of orders, products, stations, agents and restock tasks.
//
// The zero value of UUID is invalid.
//
// Example:
//
//	id := kernel.NewUUID()
//	fmt.Println(id.ShortCode()) // e.g. "1F2E3D4C"
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4).
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// DeriveUUID returns a name-based UUID (version 5) under namespace, so the same
// parts always yield the same identifier. It is used for keys that must stay stable
// across retries, such as the restock task of one approved return.
//
// Example:
//
//	taskID := kernel.DeriveUUID(orderID, productID.String())
func DeriveUUID(namespace UUID, parts ...string) UUID {
	return UUID{
		id: uuid.NewSHA1(namespace.id, []byte(strings.Join(parts, "/"))),
	}
}

// UUIDFromString parses a UUID from its string representation.
// It accepts the formats understood by uuid.Parse, including braces and the urn prefix.
//
// Example:
//
//	id, err := kernel.UUIDFromString(c.Param("orderId"))
//	if err != nil {
//	    return fmt.Errorf("invalid order ID: %w", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes creates a UUID from a 16-byte slice, as stored by the postgres adapters.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// ShortCode returns the last eight characters of the canonical form, upper-cased.
// Orders expose it as their customer-facing order number.
//
// Example:
//
//	id, _ := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	id.ShortCode() // "55440000"
func (u UUID) ShortCode() string {
	s := u.id.String()
	return strings.ToUpper(s[len(s)-shortCodeLength:])
}

// Bytes returns the underlying uuid.UUID value for persistence adapters.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both UUIDs hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero (nil) UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
