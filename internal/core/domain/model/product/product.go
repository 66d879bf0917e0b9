package product

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for product construction.
var (
	// ErrCodeIsRequired is returned when attempting to create a product without a code.
	ErrCodeIsRequired = errs.NewValueIsRequiredError("code")
	// ErrDescriptionIsRequired is returned when attempting to create a product without a description.
	ErrDescriptionIsRequired = errs.NewValueIsRequiredError("description")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product represents a catalog entry. It is a value object identified by its
// code and immutable after creation.
//
// Invariants:
//   - Code and description are non-empty
//   - Price is non-negative (enforced by kernel.Price)
//   - Category is a valid member of the closed enumeration
//
// Example:
//
//	price, _ := kernel.NewPrice(8.99)
//	margherita, err := product.NewProduct("P001", "Margherita Pizza", price, product.VegPizza)
//	if err != nil {
//	    // Handle validation error
//	}
type Product struct {
	code        string
	description string
	price       kernel.Price
	category    Category

	guard guard.ConstructorGuard
}

// NewProduct creates a Product after validating every attribute.
// This is the only way to create a valid Product instance.
func NewProduct(code string, description string, price kernel.Price, category Category) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setCode(code),
		p.setDescription(description),
		p.setPrice(price),
		p.setCategory(category),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product instance was properly constructed through NewProduct.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// Code returns the unique product code, e.g. "P001".
func (p *Product) Code() string {
	return p.code
}

// Description returns the human-readable product description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the unit price.
func (p *Product) Price() kernel.Price {
	return p.price
}

// Category returns the product's category.
func (p *Product) Category() Category {
	return p.category
}

func (p *Product) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}
	p.code = code
	return nil
}

func (p *Product) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}
	p.description = description
	return nil
}

func (p *Product) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	p.category = category
	return nil
}
