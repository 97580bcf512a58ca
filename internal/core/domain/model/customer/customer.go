package customer

import (
	"errors"
	"strings"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// Activation state names used in InvalidStateError contexts.
const (
	stateActive   = "active"
	stateInactive = "inactive"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer or RestoreCustomer constructors.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer constructor")

// Customer represents a customer of the ordering system.
//
// Customer maintains these invariants:
//   - the id is a valid CustomerID
//   - the name is trimmed and never empty
//   - the email is a constructed kernel.Email
//   - createdAt is immutable once set
//
// The activation state machine has two states, active and inactive.
// Activating an active customer or deactivating an inactive one fails
// with an InvalidStateError.
type Customer struct {
	// id uniquely identifies the customer
	id kernel.CustomerID
	// name is the customer's display name, trimmed and non-empty
	name string
	// email is the customer's normalized email address
	email kernel.Email
	// isActive reports whether the customer can currently place orders
	isActive bool
	// createdAt is the creation instant, immutable after construction
	createdAt time.Time
	// guard ensures the customer was created via a constructor
	guard guard.ConstructorGuard
}

// NewCustomer creates a new active Customer with a generated identity and
// the current time as creation instant.
//
// The name is trimmed and must be non-empty; the email must be a
// constructed kernel.Email. Violations fail with a ValidationError.
//
// Example:
//
//	email, _ := kernel.NewEmail("user@example.com")
//	c, err := customer.NewCustomer("Ada Lovelace", email)
//	if err != nil {
//	    // handle validation error
//	}
func NewCustomer(name string, email kernel.Email) (*Customer, error) {
	c := &Customer{
		id:        kernel.NewCustomerID(),
		isActive:  true,
		createdAt: time.Now(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setName(name),
		c.setEmail(email),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a Customer from persisted state. Unlike
// NewCustomer it does not generate an identity or stamp a creation time;
// every attribute comes from the caller. The restored customer behaves
// identically to one created through NewCustomer.
func RestoreCustomer(
	id kernel.CustomerID,
	name string,
	email kernel.Email,
	isActive bool,
	createdAt time.Time,
) (*Customer, error) {
	c := &Customer{
		isActive:  isActive,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Customer was created through a constructor.
// Returns ErrCustomerIsNotConstructed for nil or zero-value instances.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by identity. Customers with the same id
// are equal regardless of name, email, or activation state.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's identity.
func (c *Customer) ID() kernel.CustomerID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's email address.
func (c *Customer) Email() kernel.Email {
	return c.email
}

// IsActive reports whether the customer is active.
func (c *Customer) IsActive() bool {
	return c.isActive
}

// CreatedAt returns the creation instant.
func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

// Activate transitions the customer from inactive to active.
// Fails with an InvalidStateError when the customer is already active.
func (c *Customer) Activate() error {
	if c.isActive {
		return errs.NewInvalidStateError("Customer", stateActive, "activate")
	}
	c.isActive = true
	return nil
}

// Deactivate transitions the customer from active to inactive.
// Fails with an InvalidStateError when the customer is already inactive.
func (c *Customer) Deactivate() error {
	if !c.isActive {
		return errs.NewInvalidStateError("Customer", stateInactive, "deactivate")
	}
	c.isActive = false
	return nil
}

// UpdateName replaces the customer's name with the trimmed value.
// Fails with a ValidationError when the new name is empty or
// whitespace-only. Allowed in any activation state.
func (c *Customer) UpdateName(name string) error {
	return c.setName(name)
}

// UpdateEmail replaces the customer's email address. The email must be a
// constructed kernel.Email; there is no state restriction.
func (c *Customer) UpdateEmail(email kernel.Email) error {
	return c.setEmail(email)
}

// setID validates and sets the customer's identity.
func (c *Customer) setID(id kernel.CustomerID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

// setName trims, validates, and sets the customer's name.
func (c *Customer) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errs.NewFieldValidationError("Customer", "name", "name must not be empty", name)
	}
	c.name = trimmed
	return nil
}

// setEmail validates and sets the customer's email.
func (c *Customer) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	c.email = email
	return nil
}
