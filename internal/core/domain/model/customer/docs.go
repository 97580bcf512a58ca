// Package customer provides the Customer entity of the ordering domain.
//
// Customer is an identity-bearing entity: two instances are equal when
// their CustomerID values are equal, regardless of any other attribute.
// A customer carries a trimmed non-empty name, a normalized email, an
// activation flag, and an immutable creation timestamp.
//
// Lifecycle:
//   - NewCustomer creates a fresh customer (active, created now)
//   - RestoreCustomer rehydrates a customer from persisted state
//   - Activate and Deactivate flip the activation state machine
//   - UpdateName and UpdateEmail replace attributes under validation
//
// Customers are never destroyed inside the domain model; deletion is a
// concern of external collaborators.
package customer
