package kernel

import (
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrPriceIsNotConstructed indicates that a Price was not created through the
// NewPrice constructor. This error is returned when validating a zero-value Price.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError("price must be created via NewPrice constructor")

// Price is a value object representing a non-negative monetary amount.
// The zero value is invalid; use NewPrice to create instances.
//
// Price is immutable: arithmetic methods return new instances.
//
// Example:
//
//	unit, _ := kernel.NewPrice(8.99)
//	line := unit.Multiply(2) // 17.98
type Price struct {
	amount float64
	guard  guard.ConstructorGuard
}

// NewPrice creates a Price with the given amount.
// Returns an error if the amount is negative.
func NewPrice(amount float64) (Price, error) {
	if amount < 0 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%.2f is negative", amount),
		)
	}

	return Price{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// Amount returns the monetary amount.
func (p Price) Amount() float64 {
	return p.amount
}

// Multiply returns the price scaled by a quantity.
// Quantities are validated by the caller (order items require quantity >= 1).
func (p Price) Multiply(quantity int) Price {
	return Price{
		amount: p.amount * float64(quantity),
		guard:  guard.NewConstructorGuard(),
	}
}

// IsEqual compares two prices by amount.
func (p Price) IsEqual(other Price) bool {
	return p.amount == other.amount
}

// String renders the price with two decimal places.
func (p Price) String() string {
	return fmt.Sprintf("%.2f", p.amount)
}

// Validate checks that the Price was properly constructed.
// Returns ErrPriceIsNotConstructed for zero values.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}
