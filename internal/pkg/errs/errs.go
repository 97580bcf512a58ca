package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the five taxonomy kinds. Callers classify failures
// with errors.Is against these sentinels instead of parsing messages.
var (
	// ErrValidation classifies ValidationError.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidState classifies InvalidStateError.
	ErrInvalidState = errors.New("invalid state")
	// ErrBusinessRuleViolation classifies BusinessRuleViolationError.
	ErrBusinessRuleViolation = errors.New("business rule violated")
	// ErrNotFound classifies NotFoundError.
	ErrNotFound = errors.New("object not found")
	// ErrConflict classifies ConflictError.
	ErrConflict = errors.New("conflict")
)

// FieldFailure describes a single validation failure on one field.
// Value carries the offending input when the caller supplies it.
type FieldFailure struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// ValidationError reports malformed or out-of-range input to a factory or
// mutator. It aggregates one or more per-field failures so a caller can
// surface every problem at once.
type ValidationError struct {
	DomainError

	// EntityName names the entity or value object that rejected the input.
	EntityName string
	// Failures lists every field-level violation.
	Failures []FieldFailure
}

// NewValidationError creates a ValidationError from a list of failures.
// The message concatenates all failures as "field: message" pairs joined
// by "; ", prefixed by the entity name.
//
// Example:
//
//	err := errs.NewValidationError("Order", []errs.FieldFailure{
//	    {Field: "items", Message: "order must contain at least one item"},
//	})
//	// err.Error() == "Order: items: order must contain at least one item"
func NewValidationError(entityName string, failures []FieldFailure) *ValidationError {
	pairs := make([]string, 0, len(failures))
	for _, f := range failures {
		pairs = append(pairs, f.Field+": "+f.Message)
	}

	return &ValidationError{
		DomainError: newDomainError(
			"ValidationError",
			fmt.Sprintf("%s: %s", entityName, strings.Join(pairs, "; ")),
			map[string]any{
				"entityName": entityName,
				"failures":   failures,
			},
		),
		EntityName: entityName,
		Failures:   failures,
	}
}

// NewFieldValidationError creates a ValidationError for a single field.
// Pass nil as value when the offending input should not be echoed back.
func NewFieldValidationError(entityName string, field string, message string, value any) *ValidationError {
	return NewValidationError(entityName, []FieldFailure{
		{Field: field, Message: message, Value: value},
	})
}

// Unwrap returns ErrValidation so errors.Is can classify the kind.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// InvalidStateError reports an operation attempted while the entity's
// state machine forbids it.
type InvalidStateError struct {
	DomainError

	// EntityName names the entity whose guard rejected the operation.
	EntityName string
	// CurrentState is the state the entity was in.
	CurrentState string
	// AttemptedAction is the operation that was rejected.
	AttemptedAction string
	// AllowedStates lists the states from which the action is legal.
	// Empty when no hint applies (e.g. the entity is in a terminal state).
	AllowedStates []string
}

// NewInvalidStateError creates an InvalidStateError. The allowed-states
// clause is appended to the message only when allowedStates is provided.
//
// Example:
//
//	err := errs.NewInvalidStateError("Order", "DELIVERED", "cancel",
//	    "PENDING", "CONFIRMED", "SHIPPED")
//	// err.Error() == "Cannot cancel Order in state 'DELIVERED'. Allowed states: PENDING, CONFIRMED, SHIPPED"
func NewInvalidStateError(entityName string, currentState string, attemptedAction string, allowedStates ...string) *InvalidStateError {
	message := fmt.Sprintf("Cannot %s %s in state '%s'", attemptedAction, entityName, currentState)
	if len(allowedStates) > 0 {
		message += fmt.Sprintf(". Allowed states: %s", strings.Join(allowedStates, ", "))
	}

	return &InvalidStateError{
		DomainError: newDomainError("InvalidStateError", message, map[string]any{
			"entityName":      entityName,
			"currentState":    currentState,
			"attemptedAction": attemptedAction,
			"allowedStates":   allowedStates,
		}),
		EntityName:      entityName,
		CurrentState:    currentState,
		AttemptedAction: attemptedAction,
		AllowedStates:   allowedStates,
	}
}

// Unwrap returns ErrInvalidState so errors.Is can classify the kind.
func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// BusinessRuleViolationError reports a violated cross-field business
// constraint, identified by a named rule.
type BusinessRuleViolationError struct {
	DomainError

	// RuleName identifies the violated rule (e.g. "CurrencyMatch").
	RuleName string
}

// NewBusinessRuleViolationError creates a BusinessRuleViolationError.
// The caller-supplied context is merged with the rule name; pass nil when
// there are no extra details.
func NewBusinessRuleViolationError(ruleName string, message string, context map[string]any) *BusinessRuleViolationError {
	return &BusinessRuleViolationError{
		DomainError: newDomainError(
			"BusinessRuleViolationError",
			fmt.Sprintf("Business rule '%s' violated: %s", ruleName, message),
			mergeContext(context, map[string]any{"ruleName": ruleName}),
		),
		RuleName: ruleName,
	}
}

// Unwrap returns ErrBusinessRuleViolation so errors.Is can classify the kind.
func (e *BusinessRuleViolationError) Unwrap() error {
	return ErrBusinessRuleViolation
}

// NotFoundError reports that an entity could not be located by its
// identifier. The domain model never raises it; repositories and use
// cases do.
type NotFoundError struct {
	DomainError

	// EntityName names the entity that was looked up.
	EntityName string
	// EntityID is the identifier that matched nothing.
	EntityID string
}

// NewNotFoundError creates a NotFoundError for the given entity and id.
func NewNotFoundError(entityName string, entityID string) *NotFoundError {
	return &NotFoundError{
		DomainError: newDomainError(
			"NotFoundError",
			fmt.Sprintf("%s with id '%s' not found", entityName, entityID),
			map[string]any{
				"entityName": entityName,
				"entityId":   entityID,
			},
		),
		EntityName: entityName,
		EntityID:   entityID,
	}
}

// Unwrap returns ErrNotFound so errors.Is can classify the kind.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ConflictError reports a persistence-level conflict on an entity, such
// as a duplicate unique key or a stale version. The domain model never
// raises it; repositories and use cases do.
type ConflictError struct {
	DomainError

	// EntityName names the entity in conflict.
	EntityName string
	// ConflictReason describes what conflicted.
	ConflictReason string
}

// NewConflictError creates a ConflictError. The caller-supplied context
// is merged with the entity name and reason; pass nil when there are no
// extra details.
func NewConflictError(entityName string, conflictReason string, context map[string]any) *ConflictError {
	return &ConflictError{
		DomainError: newDomainError(
			"ConflictError",
			fmt.Sprintf("%s conflict: %s", entityName, conflictReason),
			mergeContext(context, map[string]any{
				"entityName":     entityName,
				"conflictReason": conflictReason,
			}),
		),
		EntityName:     entityName,
		ConflictReason: conflictReason,
	}
}

// Unwrap returns ErrConflict so errors.Is can classify the kind.
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
