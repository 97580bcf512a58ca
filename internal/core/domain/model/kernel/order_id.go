package kernel

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrOrderIDIsNotConstructed is returned when validating a zero-value
// OrderID. Order ids must be created via NewOrderID or OrderIDFromString.
var ErrOrderIDIsNotConstructed = errs.NewFieldValidationError(
	"OrderId", "value", "order id must be created via NewOrderID or OrderIDFromString", nil)

// orderIDPattern matches the UUID v4 textual format: 8-4-4-4-12 hex
// groups with version nibble 4 and variant nibble in {8, 9, a, b},
// case-insensitive.
var orderIDPattern = regexp.MustCompile(
	`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-4[0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

// OrderID is the identity value object for the Order aggregate.
// It wraps a UUID v4 and compares by value: the id's value, not the
// wrapper instance, defines order identity.
//
// The zero value is invalid; use NewOrderID to generate a fresh id or
// OrderIDFromString to parse one coming from storage or an external
// system.
type OrderID struct {
	id    uuid.UUID
	guard guard.ConstructorGuard
}

// NewOrderID generates a cryptographically random UUID v4 id. The
// generated value is routed through OrderIDFromString, so generated ids
// satisfy the same invariant as parsed ones.
func NewOrderID() OrderID {
	id, err := OrderIDFromString(uuid.NewString())
	if err != nil {
		// uuid.NewString always yields a canonical v4 string.
		panic(err)
	}
	return id
}

// OrderIDFromString parses an OrderID from its textual representation.
// The input must be a UUID v4 in 8-4-4-4-12 form, case-insensitive.
// Empty or malformed input fails with a ValidationError.
func OrderIDFromString(raw string) (OrderID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return OrderID{}, errs.NewFieldValidationError(
			"OrderId", "value", "order id must not be empty", raw)
	}
	if !orderIDPattern.MatchString(trimmed) {
		return OrderID{}, errs.NewFieldValidationError(
			"OrderId", "value", "order id must be a valid UUID v4", raw)
	}

	id, err := uuid.Parse(trimmed)
	if err != nil {
		return OrderID{}, errs.NewFieldValidationError(
			"OrderId", "value", "order id must be a valid UUID v4", raw)
	}

	return OrderID{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the canonical lower-case textual form of the id.
// Implements fmt.Stringer.
func (o OrderID) String() string {
	return o.id.String()
}

// IsEqual compares two order ids by value. Ids parsed from upper- and
// lower-case representations of the same UUID compare equal.
func (o OrderID) IsEqual(other OrderID) bool {
	return o.id == other.id
}

// Validate checks that the OrderID was created via a constructor.
// The zero value fails with ErrOrderIDIsNotConstructed.
func (o OrderID) Validate() error {
	return o.guard.Validate(ErrOrderIDIsNotConstructed)
}
