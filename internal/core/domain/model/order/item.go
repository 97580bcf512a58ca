package order

import (
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// Item is a line item of an order: a product reference with a quantity
// and a unit price. Item is a plain record without identity of its own;
// uniqueness within an order is by ProductID.
type Item struct {
	// ProductID references the ordered product. Unique within an order.
	ProductID string
	// ProductName is the display name of the product at order time.
	ProductName string
	// Quantity is the ordered amount, always positive.
	Quantity int
	// UnitPrice is the price of a single unit.
	UnitPrice kernel.Price
}

// NewItem creates a validated Item. It is a convenience over building the
// record directly; the Order aggregate re-validates items it receives
// either way.
func NewItem(productID string, productName string, quantity int, unitPrice kernel.Price) (Item, error) {
	item := Item{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}

	if err := item.Validate(); err != nil {
		return Item{}, err
	}
	return item, nil
}

// Validate checks the item's invariants: a non-empty product id, a
// positive quantity, and a constructed unit price. All violations are
// aggregated into a single ValidationError.
func (i Item) Validate() error {
	var failures []errs.FieldFailure

	if strings.TrimSpace(i.ProductID) == "" {
		failures = append(failures, errs.FieldFailure{
			Field:   "productId",
			Message: "product id must not be empty",
			Value:   i.ProductID,
		})
	}
	if i.Quantity <= 0 {
		failures = append(failures, errs.FieldFailure{
			Field:   "quantity",
			Message: "quantity must be a positive integer",
			Value:   i.Quantity,
		})
	}
	if err := i.UnitPrice.Validate(); err != nil {
		failures = append(failures, errs.FieldFailure{
			Field:   "unitPrice",
			Message: "unit price must be created via NewPrice constructor",
		})
	}

	if len(failures) > 0 {
		return errs.NewValidationError("OrderItem", failures)
	}
	return nil
}
