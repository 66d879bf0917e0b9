package product

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Category classifies a product and names the staff skill required to prepare
// it. It is a closed enumeration: the set of categories is fixed at compile
// time, and the capability index is rebuilt over exactly this set.
type Category int

const (
	// UnknownCategory represents an invalid or undefined category.
	// This value (0) helps catch uninitialized Category values.
	UnknownCategory Category = iota

	// VegPizza covers vegetarian pizzas.
	VegPizza

	// NonVegPizza covers non-vegetarian pizzas.
	NonVegPizza

	// Sandwich covers sandwiches.
	Sandwich

	// Burger covers burgers.
	Burger

	// Drinks covers beverages.
	Drinks
)

// getCategoryStrings returns a map of Category values to their display names.
// All categories are included for string conversion.
func getCategoryStrings() map[Category]string {
	return map[Category]string{
		UnknownCategory: "Unknown",
		VegPizza:        "Veg Pizza",
		NonVegPizza:     "Non-Veg Pizza",
		Sandwich:        "Sandwich",
		Burger:          "Burger",
		Drinks:          "Drinks",
	}
}

// getValidCategoryStrings returns a map of only valid Category values.
// Only valid categories are included to support validation.
func getValidCategoryStrings() map[Category]string {
	//nolint:exhaustive // UnknownCategory is intentionally excluded as it's invalid
	return map[Category]string{
		VegPizza:    "Veg Pizza",
		NonVegPizza: "Non-Veg Pizza",
		Sandwich:    "Sandwich",
		Burger:      "Burger",
		Drinks:      "Drinks",
	}
}

// AllCategories returns every valid category in declaration order.
// The capability index iterates this set when rebuilding.
func AllCategories() []Category {
	return []Category{VegPizza, NonVegPizza, Sandwich, Burger, Drinks}
}

// Validate checks if the Category value is valid.
// UnknownCategory (0) and any out-of-range values are invalid.
func (c Category) Validate() error {
	if _, ok := getValidCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"category is invalid",
			fmt.Errorf("%d is not a valid category", c),
		)
	}
	return nil
}

// String returns the human-readable name of the category, e.g. "Veg Pizza".
// Returns "Unknown" for invalid values. Implements fmt.Stringer.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "Unknown"
}

// CategoryFromString resolves a display name back to its Category.
// Used when reconstructing domain objects from persistence.
func CategoryFromString(s string) (Category, error) {
	for category, str := range getValidCategoryStrings() {
		if str == s {
			return category, nil
		}
	}

	return UnknownCategory, errs.NewValueIsInvalidErrorWithCause(
		"category is invalid",
		fmt.Errorf("%q is not a valid category name", s),
	)
}
