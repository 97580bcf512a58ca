// Package order provides the Order aggregate root of the ordering domain.
//
// The package includes:
//   - Order: the aggregate root owning an item collection and a lifecycle
//     status
//   - Status: a state machine enforcing valid status transitions
//   - Item: a line item, unique within an order by product id
//
// Key business rules:
//   - an order always contains at least one item after creation
//   - each product id appears at most once; adding an existing product
//     merges quantities and keeps the existing line's unit price
//   - the status workflow is PENDING -> CONFIRMED -> SHIPPED -> DELIVERED,
//     with CANCELLED reachable from every state except DELIVERED
//   - items can only be added while the order is PENDING
//   - all items of an order share one currency, or the total cannot be
//     computed
//
// Orders reference a customer only through the customer's email, not
// through an object reference. This is a deliberate decoupling: the Order
// aggregate is its own consistency boundary.
//
// The aggregate provides no locking. Operations are pure in-memory state
// transitions; a concurrent host must serialize access per order
// identity (for example with optimistic concurrency or a per-id mutex)
// in its repository or use-case layer.
package order
