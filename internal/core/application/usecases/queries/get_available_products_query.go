package queries

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrGetAvailableProductsQueryIsNotConstructed = errors.New(
	"GetAvailableProductsQuery must be created via NewGetAvailableProductsQuery constructor",
)

// GetAvailableProductsQuery retrieves the catalog products whose category is
// currently covered by at least one logged-in staff member. This is the menu
// a customer can actually order from right now.
//
// Example:
//
//	query := NewGetAvailableProductsQuery()
//	handler := NewGetAvailableProductsQueryHandler(catalog, indexHolder)
//
//	available, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get available products: %w", err)
//	}
//	fmt.Printf("%d products can be prepared right now\n", len(available))
type GetAvailableProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableProductsQuery creates a query for currently preparable products.
// This is a parameterless query reading the catalog and the capability index.
func NewGetAvailableProductsQuery() GetAvailableProductsQuery {
	return GetAvailableProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableProductsQueryIsNotConstructed if validation fails.
func (q GetAvailableProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableProductsQueryIsNotConstructed)
}

// GetAvailableProductsQueryResponse represents one currently preparable product.
type GetAvailableProductsQueryResponse struct {
	Code        string
	Description string
	Price       float64
	Category    string
}
