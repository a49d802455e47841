package kernel

import (
	"courierdispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsMissing is returned for a zero-value or nil identifier.
var ErrUUIDIsMissing = errs.NewValueIsRequiredError("id")

// UUID identifies couriers and orders. It wraps github.com/google/uuid so the domain
// never handles uuid.Nil as a real identifier.
type UUID struct {
	value uuid.UUID
}

// NewUUID generates a random (version 4) identifier.
func NewUUID() UUID {
	return UUID{value: uuid.New()}
}

// ParseUUID accepts the canonical textual form and rejects the nil UUID.
func ParseUUID(s string) (UUID, error) {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}

	return UUIDFrom(parsed)
}

// UUIDFrom adopts an identifier produced elsewhere, for example by the HTTP
// parameter binder or the database driver.
func UUIDFrom(value uuid.UUID) (UUID, error) {
	if value == uuid.Nil {
		return UUID{}, ErrUUIDIsMissing
	}

	return UUID{value: value}, nil
}

// String returns the canonical textual form.
func (u UUID) String() string {
	return u.value.String()
}

// Value exposes the underlying uuid.UUID for adapters.
func (u UUID) Value() uuid.UUID {
	return u.value
}

// IsEqual reports whether both identifiers hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.value == other.value
}

// Validate reports ErrUUIDIsMissing for the zero value.
func (u UUID) Validate() error {
	if u.value == uuid.Nil {
		return ErrUUIDIsMissing
	}
	return nil
}
