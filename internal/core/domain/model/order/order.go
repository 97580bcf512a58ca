package order

import (
	"errors"
	"slices"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through the NewOrder or RestoreOrder constructors.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a customer order. It is the aggregate root that owns
// its item collection exclusively and manages the order lifecycle from
// creation through confirmation, shipping, and delivery.
//
// Order maintains these invariants:
//   - the id is a valid OrderID
//   - the customer email is a constructed kernel.Email
//   - the item collection is never empty and each product id appears at
//     most once
//   - status transitions follow the Status state machine
//   - createdAt is immutable once set
//
// Orders are equal when their ids are equal, independent of status or
// items. The item collection is never exposed by reference: Items returns
// a defensive copy, so callers cannot mutate internal state through it.
type Order struct {
	// id uniquely identifies the order
	id kernel.OrderID
	// customerEmail identifies the ordering customer, by email rather
	// than by object reference
	customerEmail kernel.Email
	// items are the order's line items in insertion order
	items []Item
	// status is the current state in the order lifecycle
	status Status
	// createdAt is the creation instant, immutable after construction
	createdAt time.Time
	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order with a generated identity, Pending status,
// and the current time as creation instant.
//
// The item list must be non-empty and every item must satisfy its
// invariants; violations fail with a ValidationError. The order stores a
// defensive copy of the list, so the caller's slice stays independent.
//
// Example:
//
//	email, _ := kernel.NewEmail("user@example.com")
//	price, _ := kernel.NewPrice(10, kernel.EUR)
//	o, err := order.NewOrder(email, []order.Item{
//	    {ProductID: "sku-1", ProductName: "Widget", Quantity: 2, UnitPrice: price},
//	})
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(customerEmail kernel.Email, items []Item) (*Order, error) {
	o := &Order{
		status:    Pending,
		createdAt: time.Now(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(kernel.NewOrderID()),
		o.setCustomerEmail(customerEmail),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state. Unlike
// NewOrder it does not generate an identity, stamp a creation time, or
// force the Pending status; every attribute comes from the caller. The
// status may be any valid Status. The restored order behaves identically
// to one created through normal domain operations.
func RestoreOrder(
	id kernel.OrderID,
	customerEmail kernel.Email,
	items []Item,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerEmail(customerEmail),
		o.setItems(items),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor.
// Returns ErrOrderIsNotConstructed for nil or zero-value instances.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity. Orders with the same id are
// equal regardless of status, items, or any other attribute.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identity.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// CustomerEmail returns the email of the ordering customer.
func (o *Order) CustomerEmail() kernel.Email {
	return o.customerEmail
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation instant.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns a defensive copy of the order's line items in insertion
// order. Mutating the returned slice never affects the order.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// Confirm transitions the order from Pending to Confirmed.
// Any other current status fails with an InvalidStateError.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Ship transitions the order from Confirmed to Shipped.
// Any other current status fails with an InvalidStateError.
func (o *Order) Ship() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Deliver transitions the order from Shipped to Delivered.
// Any other current status fails with an InvalidStateError.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Cancel transitions the order to Cancelled from Pending, Confirmed, or
// Shipped. Cancelling a delivered or already cancelled order fails with
// an InvalidStateError.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// AddItem adds a line item to the order.
//
// Items can only be added while the order is Pending; any other status
// fails with an InvalidStateError. An invalid item fails with a
// ValidationError.
//
// When an item with the same product id already exists, its quantity is
// incremented by the new item's quantity and the existing line's unit
// price is retained. The incoming price is discarded so a line's price
// stays stable across merges. Otherwise the item is appended, preserving
// insertion order.
func (o *Order) AddItem(item Item) error {
	if o.status != Pending {
		return errs.NewInvalidStateError(
			entityName, o.status.String(), "add item to", Pending.String())
	}
	if err := item.Validate(); err != nil {
		return err
	}

	for i := range o.items {
		if o.items[i].ProductID == item.ProductID {
			o.items[i].Quantity += item.Quantity
			return nil
		}
	}

	o.items = append(o.items, item)
	return nil
}

// Total calculates the order total: the sum over all items of unit price
// times quantity.
//
// All items must share one currency; mixed currencies fail with a
// BusinessRuleViolationError from Price.Add. An order without items
// yields a zero total in the default currency, which is unreachable for
// constructed orders since the item list is never empty.
func (o *Order) Total() (kernel.Price, error) {
	if len(o.items) == 0 {
		return kernel.ZeroPrice(kernel.DefaultCurrency), nil
	}

	total, err := o.items[0].UnitPrice.Multiply(o.items[0].Quantity)
	if err != nil {
		return kernel.Price{}, err
	}

	for _, item := range o.items[1:] {
		line, err := item.UnitPrice.Multiply(item.Quantity)
		if err != nil {
			return kernel.Price{}, err
		}
		total, err = total.Add(line)
		if err != nil {
			return kernel.Price{}, err
		}
	}

	return total, nil
}

// setID validates and sets the order's identity.
func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerEmail validates and sets the customer email.
func (o *Order) setCustomerEmail(customerEmail kernel.Email) error {
	if err := customerEmail.Validate(); err != nil {
		return err
	}
	o.customerEmail = customerEmail
	return nil
}

// setItems validates the item list and stores a defensive copy.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewFieldValidationError(
			entityName, "items", "order must contain at least one item", nil)
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = slices.Clone(items)
	return nil
}

// setStatus validates and sets the order's status.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
