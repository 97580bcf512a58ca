package order

import (
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Shipped ──> Delivered
//	   │            │            │
//	   └────────────┴────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. Status is a value object that
// validates state transitions and provides string representations for
// persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly created order.
	// Items can only be added while the order is pending.
	Pending

	// Confirmed indicates the order has been confirmed for fulfillment.
	Confirmed

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Delivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was cancelled before delivery.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// entityName is the entity label carried by order state-machine errors.
const entityName = "Order"

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// cancellableStateNames lists the states from which an order may be
// cancelled, in workflow order. Used for allowed-states hints.
func cancellableStateNames() []string {
	return []string{Pending.String(), Confirmed.String(), Shipped.String()}
}

// StatusFromString parses a Status from its textual representation,
// case-insensitively. Used when rehydrating orders from persistence.
// Unrecognized input fails with a ValidationError.
func StatusFromString(raw string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if strings.EqualFold(raw, str) {
			return status, nil
		}
	}
	return Unknown, errs.NewFieldValidationError(
		entityName, "status", fmt.Sprintf("%q is not a valid order status", raw), raw)
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, Confirmed, Shipped, Delivered, and
// Cancelled. Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewFieldValidationError(
			entityName, "status", fmt.Sprintf("%d is not a valid order status", int(s)), int(s))
	}
	return nil
}

// String returns the upper-case name of the status, or "UNKNOWN" for
// invalid values. Implements fmt.Stringer and is safe to call on any
// Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Confirm transitions the status to Confirmed.
//
// The only valid source state is Pending. Any other state fails with an
// InvalidStateError carrying the allowed-states hint [PENDING].
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidStateError(
			entityName, s.String(), "confirm", Pending.String())
	}
	return Confirmed, nil
}

// Ship transitions the status to Shipped.
//
// The only valid source state is Confirmed. Any other state fails with an
// InvalidStateError carrying the allowed-states hint [CONFIRMED].
func (s Status) Ship() (Status, error) {
	if s != Confirmed {
		return Unknown, errs.NewInvalidStateError(
			entityName, s.String(), "ship", Confirmed.String())
	}
	return Shipped, nil
}

// Deliver transitions the status to Delivered.
//
// The only valid source state is Shipped. Any other state fails with an
// InvalidStateError carrying the allowed-states hint [SHIPPED].
func (s Status) Deliver() (Status, error) {
	if s != Shipped {
		return Unknown, errs.NewInvalidStateError(
			entityName, s.String(), "deliver", Shipped.String())
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid source states are Pending, Confirmed, and Shipped. Cancelling a
// delivered order fails with the allowed-states hint
// [PENDING, CONFIRMED, SHIPPED]; cancelling an already cancelled order
// fails without a hint, since the order is in a terminal state and no
// state would permit the action.
func (s Status) Cancel() (Status, error) {
	switch s {
	case Pending, Confirmed, Shipped:
		return Cancelled, nil
	case Cancelled:
		return Unknown, errs.NewInvalidStateError(entityName, s.String(), "cancel")
	default:
		return Unknown, errs.NewInvalidStateError(
			entityName, s.String(), "cancel", cancellableStateNames()...)
	}
}
