// Package errs provides the typed error taxonomy for the ordering domain.
// Every business-rule or validation failure raised by the domain model is
// one of the five concrete kinds defined here, never an untyped error.
//
// The five kinds:
//   - ValidationError: malformed or out-of-range input to a factory or
//     mutator, carrying one or more per-field failure records
//   - InvalidStateError: an operation attempted while an entity's state
//     machine forbids it
//   - BusinessRuleViolationError: a cross-field business constraint was
//     violated (for example a currency mismatch on price arithmetic)
//   - NotFoundError: an entity could not be located by its identifier
//   - ConflictError: a persistence-level conflict on an entity
//
// NotFoundError and ConflictError are defined for external collaborators
// (repositories, use cases); the domain model itself never raises them.
//
// Each kind follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValidation) for classification
//     with errors.Is
//   - A struct type embedding DomainError with fields for error details
//   - A constructor function that captures timestamp, context, and a
//     best-effort stack trace
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Callers classify failures by kind (errors.Is or errors.As), never by
// parsing messages. The shared DomainError base provides a stable JSON
// projection so outer layers can serialize any kind uniformly.
package errs
