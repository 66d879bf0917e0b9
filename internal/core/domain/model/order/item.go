package order

import (
	"errors"
	"fmt"
	"slices"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/product"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for order item construction.
var (
	// ErrProductCodeIsRequired is returned when attempting to create an item without a product code.
	ErrProductCodeIsRequired = errs.NewValueIsRequiredError("product code")
	// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item represents a single line of an order. It snapshots the product's
// category and price at placement time, so later catalog changes never affect
// queued orders and the dispatcher can match items without catalog lookups.
//
// Item is owned exclusively by its parent Order and is immutable.
type Item struct {
	// productCode references the catalog entry this line was resolved from
	productCode string
	// quantity is the number of units ordered (>= 1)
	quantity int
	// toppings is an ordered, possibly empty customization list
	toppings []string
	// category is the product category captured at placement time
	category product.Category
	// unitPrice is the per-unit price captured at placement time
	unitPrice kernel.Price
	// linePrice is unit price multiplied by quantity
	linePrice kernel.Price

	guard guard.ConstructorGuard
}

// NewItem creates an order line for the given product snapshot.
// The line price is computed as unitPrice multiplied by quantity.
//
// Returns an error if the product code is empty, the quantity is below 1,
// the category is invalid, or the unit price was not constructed.
func NewItem(
	productCode string,
	quantity int,
	toppings []string,
	category product.Category,
	unitPrice kernel.Price,
) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductCode(productCode),
		item.setQuantity(quantity),
		item.setCategory(category),
		item.setLinePrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	item.toppings = slices.Clone(toppings)
	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductCode returns the code of the catalog entry this line references.
func (i Item) ProductCode() string {
	return i.productCode
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Toppings returns a copy of the ordered customization list. May be empty.
func (i Item) Toppings() []string {
	return slices.Clone(i.toppings)
}

// Category returns the product category captured at placement time.
func (i Item) Category() product.Category {
	return i.category
}

// UnitPrice returns the per-unit price captured at placement time.
func (i Item) UnitPrice() kernel.Price {
	return i.unitPrice
}

// LinePrice returns the unit price multiplied by the quantity.
func (i Item) LinePrice() kernel.Price {
	return i.linePrice
}

func (i *Item) setProductCode(code string) error {
	if code == "" {
		return ErrProductCodeIsRequired
	}
	i.productCode = code
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is less than 1", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setCategory(category product.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	i.category = category
	return nil
}

func (i *Item) setLinePrice(unitPrice kernel.Price) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	i.linePrice = unitPrice.Multiply(i.quantity)
	return nil
}
