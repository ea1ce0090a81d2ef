package kernel

import (
	"fmt"

	"planner/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned by Validate for the nil UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID or UUIDFromString")

// UUID identifies trucks, trips and orders. It wraps google/uuid so the domain
// never depends on the library type directly.
//
// Example:
//
//	truckID := kernel.NewUUID()
//	tripID, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
type UUID struct {
	id uuid.UUID
}

// NewUUID returns a random version 4 identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses any format accepted by uuid.Parse. The nil UUID is rejected.
//
// Parameters:
//   - s: textual identifier, usually a path parameter or a database column
//
// Returns:
//   - UUID: parsed identifier
//   - error: format error, or ErrUUIDIsNotConstructed for the nil UUID
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUIDFromGoogle(id)
}

// UUIDFromGoogle wraps an already parsed google/uuid value, as read from DTOs
// and generated API types.
func UUIDFromGoogle(id uuid.UUID) (UUID, error) {
	u := UUID{id: id}
	if err := u.Validate(); err != nil {
		return UUID{}, err
	}
	return u, nil
}

// MustUUIDFromString is UUIDFromString for literals in tests and fixtures. It panics on bad input.
func MustUUIDFromString(s string) UUID {
	u, err := UUIDFromString(s)
	if err != nil {
		panic(err)
	}
	return u
}

func (u UUID) String() string {
	return u.id.String()
}

// Google exposes the wrapped value for persistence and transport adapters.
func (u UUID) Google() uuid.UUID {
	return u.id
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// IsZero reports whether u is the nil UUID, which the domain uses for "no trip".
func (u UUID) IsZero() bool {
	return u.id == uuid.Nil
}

func (u UUID) Validate() error {
	if u.IsZero() {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
