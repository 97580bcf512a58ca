package kernel

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// Currency enumerates the monetary currencies supported by the ordering
// domain. Any other value is rejected by NewPrice.
type Currency string

const (
	// USD is the United States dollar.
	USD Currency = "USD"
	// EUR is the euro.
	EUR Currency = "EUR"
	// GBP is the pound sterling.
	GBP Currency = "GBP"
	// JPY is the Japanese yen.
	JPY Currency = "JPY"
)

// DefaultCurrency is used for zero totals when no item supplies a
// currency.
const DefaultCurrency = USD

// Validate checks that the currency is one of the supported values.
func (c Currency) Validate() error {
	switch c {
	case USD, EUR, GBP, JPY:
		return nil
	}
	return errs.NewFieldValidationError(
		"Price", "currency", fmt.Sprintf("currency %q is not supported", string(c)), string(c))
}

// String returns the ISO 4217 code of the currency.
func (c Currency) String() string {
	return string(c)
}

// ErrPriceIsNotConstructed is returned when validating a zero-value Price.
// Prices must be created via the NewPrice or ZeroPrice constructors.
var ErrPriceIsNotConstructed = errs.NewFieldValidationError(
	"Price", "value", "price must be created via NewPrice constructor", nil)

// Price is an immutable monetary value object: a non-negative amount with
// at most two decimal places of precision, in one of the supported
// currencies. Arithmetic operations return new instances and never mutate
// the receiver.
//
// Amounts are held as exact decimals, so repeated addition does not
// accumulate binary floating-point drift.
//
// Example:
//
//	unit, _ := kernel.NewPrice(10, kernel.EUR)
//	line, _ := unit.Multiply(3)
//	line.Amount() // 30
type Price struct {
	amount   decimal.Decimal
	currency Currency
	guard    guard.ConstructorGuard
}

// NewPrice creates a Price from an amount and a currency.
//
// The amount must be a finite, non-negative number; it is rounded
// half-up to two decimal places at construction. The currency must be one
// of the supported Currency values. Violations fail with a
// ValidationError.
func NewPrice(amount float64, currency Currency) (Price, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Price{}, errs.NewFieldValidationError(
			"Price", "amount", "amount must be a finite number", amount)
	}
	if amount < 0 {
		return Price{}, errs.NewFieldValidationError(
			"Price", "amount", "amount must not be negative", amount)
	}
	if err := currency.Validate(); err != nil {
		return Price{}, err
	}

	return Price{
		amount:   decimal.NewFromFloat(amount).Round(2),
		currency: currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// ZeroPrice returns a zero amount in the given currency. The caller is
// expected to pass one of the Currency constants.
func ZeroPrice(currency Currency) Price {
	return Price{
		amount:   decimal.Zero,
		currency: currency,
		guard:    guard.NewConstructorGuard(),
	}
}

// Amount returns the amount as a float64. The value has at most two
// decimal places, so the conversion is exact for any realistic magnitude.
func (p Price) Amount() float64 {
	return p.amount.InexactFloat64()
}

// Currency returns the price's currency.
func (p Price) Currency() Currency {
	return p.currency
}

// Add returns a new Price holding the sum of both amounts.
//
// Both prices must share the same currency; a mismatch fails with a
// BusinessRuleViolationError for rule "CurrencyMatch". Amounts in
// different currencies have no defined sum without an exchange rate,
// which is outside the domain model.
func (p Price) Add(other Price) (Price, error) {
	if p.currency != other.currency {
		return Price{}, errs.NewBusinessRuleViolationError(
			"CurrencyMatch",
			fmt.Sprintf("cannot add %s to %s", other.currency, p.currency),
			map[string]any{
				"currency":      p.currency.String(),
				"otherCurrency": other.currency.String(),
			},
		)
	}

	return Price{
		amount:   p.amount.Add(other.amount),
		currency: p.currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Multiply returns a new Price holding the amount multiplied by quantity.
// The quantity must be non-negative; a negative quantity fails with a
// ValidationError.
func (p Price) Multiply(quantity int) (Price, error) {
	if quantity < 0 {
		return Price{}, errs.NewFieldValidationError(
			"Price", "quantity", "quantity must be a non-negative integer", quantity)
	}

	return Price{
		amount:   p.amount.Mul(decimal.NewFromInt(int64(quantity))),
		currency: p.currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// IsEqual compares two prices structurally: equal amounts and equal
// currencies.
func (p Price) IsEqual(other Price) bool {
	return p.currency == other.currency && p.amount.Equal(other.amount)
}

// String formats the price as "12.34 EUR".
// Implements fmt.Stringer.
func (p Price) String() string {
	return p.amount.StringFixed(2) + " " + string(p.currency)
}

// Validate checks that the Price was created via a constructor.
// The zero value fails with ErrPriceIsNotConstructed.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}
