package kernel

import (
	"strings"

	"github.com/google/uuid"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrCustomerIDIsNotConstructed is returned when validating a zero-value
// CustomerID. Customer ids must be created via NewCustomerID or
// CustomerIDFromString.
var ErrCustomerIDIsNotConstructed = errs.NewFieldValidationError(
	"CustomerId", "value", "customer id must be created via NewCustomerID or CustomerIDFromString", nil)

// CustomerID is the identity value object for the Customer entity.
// It wraps a non-empty string identifier and compares by value.
//
// Unlike OrderID, a customer id is not constrained to the UUID format:
// customer identities may originate from external systems with their own
// id schemes. Freshly generated ids are UUIDs.
type CustomerID struct {
	value string
	guard guard.ConstructorGuard
}

// NewCustomerID generates a fresh random customer id.
func NewCustomerID() CustomerID {
	return CustomerID{
		value: uuid.NewString(),
		guard: guard.NewConstructorGuard(),
	}
}

// CustomerIDFromString creates a CustomerID from its textual
// representation. Empty or whitespace-only input fails with a
// ValidationError.
func CustomerIDFromString(raw string) (CustomerID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return CustomerID{}, errs.NewFieldValidationError(
			"CustomerId", "value", "customer id must not be empty", raw)
	}

	return CustomerID{
		value: trimmed,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Value returns the textual form of the id.
func (c CustomerID) Value() string {
	return c.value
}

// String returns the textual form of the id.
// Implements fmt.Stringer.
func (c CustomerID) String() string {
	return c.value
}

// IsEqual compares two customer ids by value.
func (c CustomerID) IsEqual(other CustomerID) bool {
	return c.value == other.value
}

// Validate checks that the CustomerID was created via a constructor.
// The zero value fails with ErrCustomerIDIsNotConstructed.
func (c CustomerID) Validate() error {
	return c.guard.Validate(ErrCustomerIDIsNotConstructed)
}
