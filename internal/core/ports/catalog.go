package ports

import (
	"context"

	"dispatch/internal/core/domain/model/product"
)

// Catalog defines the read contract for the product catalog. The catalog is
// reference data: placement snapshots a product's category and price onto the
// order item, so later catalog edits never affect already placed orders.
type Catalog interface {
	// Lookup retrieves a product by its code.
	// Returns errs.ObjectNotFoundError when the code is not in the catalog.
	Lookup(ctx context.Context, code string) (*product.Product, error)

	// List retrieves the full catalog in its stable listing order.
	List(ctx context.Context) ([]*product.Product, error)
}
