package order_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomerEmail(t *testing.T) kernel.Email {
	t.Helper()
	email, err := kernel.NewEmail("customer@example.com")
	require.NoError(t, err)
	return email
}

func mustPrice(t *testing.T, amount float64, currency kernel.Currency) kernel.Price {
	t.Helper()
	price, err := kernel.NewPrice(amount, currency)
	require.NoError(t, err)
	return price
}

func widgetItems(t *testing.T) []order.Item {
	t.Helper()
	return []order.Item{
		{ProductID: "sku-1", ProductName: "Widget", Quantity: 2, UnitPrice: mustPrice(t, 10, kernel.EUR)},
		{ProductID: "sku-2", ProductName: "Gadget", Quantity: 1, UnitPrice: mustPrice(t, 20, kernel.EUR)},
	}
}

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(validCustomerEmail(t), widgetItems(t))
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with generated identity", func(t *testing.T) {
		before := time.Now()
		o, err := order.NewOrder(validCustomerEmail(t), widgetItems(t))

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		require.NoError(t, o.ID().Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "customer@example.com", o.CustomerEmail().Value())
		assert.Len(t, o.Items(), 2)
		assert.False(t, o.CreatedAt().Before(before))
	})

	t.Run("should fail with empty item list", func(t *testing.T) {
		o, err := order.NewOrder(validCustomerEmail(t), nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Contains(t, err.Error(), "order must contain at least one item")
		assert.Nil(t, o)
	})

	t.Run("should fail with an invalid item", func(t *testing.T) {
		items := []order.Item{
			{ProductID: "", Quantity: 0, UnitPrice: mustPrice(t, 10, kernel.EUR)},
		}

		o, err := order.NewOrder(validCustomerEmail(t), items)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Nil(t, o)
	})

	t.Run("should fail with zero value email", func(t *testing.T) {
		var email kernel.Email

		o, err := order.NewOrder(email, widgetItems(t))

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should copy the caller's item slice", func(t *testing.T) {
		items := widgetItems(t)
		o, err := order.NewOrder(validCustomerEmail(t), items)
		require.NoError(t, err)

		items[0].Quantity = 999

		assert.Equal(t, 2, o.Items()[0].Quantity)
	})

	t.Run("should generate distinct identities for identical arguments", func(t *testing.T) {
		a, _ := order.NewOrder(validCustomerEmail(t), widgetItems(t))
		b, _ := order.NewOrder(validCustomerEmail(t), widgetItems(t))

		assert.False(t, a.IsEqual(b))
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should rehydrate all attributes", func(t *testing.T) {
		id := kernel.NewOrderID()
		createdAt := time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)

		o, err := order.RestoreOrder(id, validCustomerEmail(t), widgetItems(t), order.Shipped, createdAt)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Shipped, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("should fail with an invalid status", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewOrderID(), validCustomerEmail(t), widgetItems(t), order.Unknown, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Nil(t, o)
	})

	t.Run("should fail with zero value id", func(t *testing.T) {
		var id kernel.OrderID

		o, err := order.RestoreOrder(id, validCustomerEmail(t), widgetItems(t), order.Pending, time.Now())

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("should walk the happy path to DELIVERED", func(t *testing.T) {
		o := pendingOrder(t)

		require.NoError(t, o.Confirm())
		assert.Equal(t, order.Confirmed, o.Status())

		require.NoError(t, o.Ship())
		assert.Equal(t, order.Shipped, o.Status())

		require.NoError(t, o.Deliver())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should fail to ship a pending order", func(t *testing.T) {
		o := pendingOrder(t)

		err := o.Ship()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.Pending, o.Status(), "status must not change on failure")
	})

	t.Run("should cancel from every non-terminal state", func(t *testing.T) {
		cancelAfter := map[string]func(o *order.Order){
			"pending":   func(*order.Order) {},
			"confirmed": func(o *order.Order) { require.NoError(t, o.Confirm()) },
			"shipped": func(o *order.Order) {
				require.NoError(t, o.Confirm())
				require.NoError(t, o.Ship())
			},
		}

		for name, prepare := range cancelAfter {
			t.Run(name, func(t *testing.T) {
				o := pendingOrder(t)
				prepare(o)

				require.NoError(t, o.Cancel())
				assert.Equal(t, order.Cancelled, o.Status())
			})
		}
	})

	t.Run("should fail to cancel a delivered order", func(t *testing.T) {
		o := pendingOrder(t)
		require.NoError(t, o.Confirm())
		require.NoError(t, o.Ship())
		require.NoError(t, o.Deliver())

		err := o.Cancel()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)

		var stateErr *errs.InvalidStateError
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, []string{"PENDING", "CONFIRMED", "SHIPPED"}, stateErr.AllowedStates)
	})

	t.Run("should fail to cancel twice", func(t *testing.T) {
		o := pendingOrder(t)
		require.NoError(t, o.Cancel())

		err := o.Cancel()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)

		var stateErr *errs.InvalidStateError
		require.ErrorAs(t, err, &stateErr)
		assert.Empty(t, stateErr.AllowedStates, "terminal state carries no hint")
	})
}

func TestOrder_AddItem(t *testing.T) {
	t.Run("should append a new product preserving insertion order", func(t *testing.T) {
		o := pendingOrder(t)

		err := o.AddItem(order.Item{
			ProductID:   "sku-3",
			ProductName: "Gizmo",
			Quantity:    4,
			UnitPrice:   mustPrice(t, 2.50, kernel.EUR),
		})

		require.NoError(t, err)
		items := o.Items()
		require.Len(t, items, 3)
		assert.Equal(t, "sku-3", items[2].ProductID)
	})

	t.Run("should merge quantities for an existing product", func(t *testing.T) {
		o := pendingOrder(t)

		err := o.AddItem(order.Item{
			ProductID:   "sku-1",
			ProductName: "Widget",
			Quantity:    3,
			UnitPrice:   mustPrice(t, 10, kernel.EUR),
		})

		require.NoError(t, err)
		items := o.Items()
		require.Len(t, items, 2, "merging must not grow the item count")
		assert.Equal(t, 5, items[0].Quantity)
	})

	t.Run("should keep the existing unit price when merging", func(t *testing.T) {
		// The incoming price is discarded on merge so a line's price stays
		// stable. Mirrors the price-stability rule; see package docs.
		o := pendingOrder(t)

		err := o.AddItem(order.Item{
			ProductID:   "sku-1",
			ProductName: "Widget",
			Quantity:    1,
			UnitPrice:   mustPrice(t, 99.99, kernel.EUR),
		})

		require.NoError(t, err)
		assert.True(t, o.Items()[0].UnitPrice.IsEqual(mustPrice(t, 10, kernel.EUR)))
	})

	t.Run("should fail on a confirmed order", func(t *testing.T) {
		o := pendingOrder(t)
		require.NoError(t, o.Confirm())

		err := o.AddItem(widgetItems(t)[0])

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)

		var stateErr *errs.InvalidStateError
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, []string{"PENDING"}, stateErr.AllowedStates)
		assert.Len(t, o.Items(), 2)
	})

	t.Run("should fail with an invalid item", func(t *testing.T) {
		o := pendingOrder(t)

		err := o.AddItem(order.Item{ProductID: " ", Quantity: -1})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Len(t, o.Items(), 2)
	})
}

func TestOrder_Total(t *testing.T) {
	t.Run("should sum unit price times quantity over all items", func(t *testing.T) {
		// qty 2 @ 10 EUR + qty 1 @ 20 EUR = 40 EUR
		o := pendingOrder(t)

		total, err := o.Total()

		require.NoError(t, err)
		assert.InDelta(t, 40, total.Amount(), 0)
		assert.Equal(t, kernel.EUR, total.Currency())
	})

	t.Run("should reflect merged quantities", func(t *testing.T) {
		o := pendingOrder(t)
		require.NoError(t, o.AddItem(order.Item{
			ProductID: "sku-1", ProductName: "Widget", Quantity: 3,
			UnitPrice: mustPrice(t, 10, kernel.EUR),
		}))

		total, err := o.Total()

		require.NoError(t, err)
		// qty 5 @ 10 EUR + qty 1 @ 20 EUR
		assert.InDelta(t, 70, total.Amount(), 0)
	})

	t.Run("should fail with mixed currencies", func(t *testing.T) {
		items := []order.Item{
			{ProductID: "sku-1", ProductName: "Widget", Quantity: 1, UnitPrice: mustPrice(t, 10, kernel.EUR)},
			{ProductID: "sku-2", ProductName: "Gadget", Quantity: 1, UnitPrice: mustPrice(t, 10, kernel.USD)},
		}
		o, err := order.NewOrder(validCustomerEmail(t), items)
		require.NoError(t, err)

		_, err = o.Total()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	})
}

func TestOrder_Items(t *testing.T) {
	t.Run("should return a defensive copy", func(t *testing.T) {
		o := pendingOrder(t)

		leaked := o.Items()
		leaked[0].Quantity = 999
		leaked[0].ProductID = "tampered"

		fresh := o.Items()
		assert.Equal(t, 2, fresh[0].Quantity)
		assert.Equal(t, "sku-1", fresh[0].ProductID)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	t.Run("should equate orders restored with the same id", func(t *testing.T) {
		id := kernel.NewOrderID()
		a, _ := order.RestoreOrder(id, validCustomerEmail(t), widgetItems(t), order.Pending, time.Now())
		b, _ := order.RestoreOrder(id, validCustomerEmail(t), widgetItems(t)[:1], order.Cancelled, time.Now())

		assert.True(t, a.IsEqual(b))
		assert.True(t, b.IsEqual(a))
	})

	t.Run("should return false for nil", func(t *testing.T) {
		o := pendingOrder(t)

		assert.False(t, o.IsEqual(nil))
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail for zero value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}
