// Package inmemory provides in-process implementations of the outbound ports:
// a static product catalog and a mutex-guarded staff/order store with unit of
// work semantics. One lock serializes every transaction, which makes state
// transitions linearizable without further coordination. That is the intended
// concurrency model for this low-volume core.
package inmemory

import (
	"context"
	"slices"

	"dispatch/internal/core/domain/model/product"
	"dispatch/internal/pkg/errs"
)

// StaticCatalog is a read-only product catalog held in memory. The catalog is
// reference data: it never changes after construction, so lookups need no
// locking.
type StaticCatalog struct {
	listing []*product.Product
	byCode  map[string]*product.Product
}

// NewStaticCatalog creates a catalog from the given products, preserving
// listing order. Duplicate product codes are rejected.
func NewStaticCatalog(products []*product.Product) (*StaticCatalog, error) {
	catalog := &StaticCatalog{
		listing: make([]*product.Product, 0, len(products)),
		byCode:  make(map[string]*product.Product, len(products)),
	}

	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, exists := catalog.byCode[p.Code()]; exists {
			return nil, errs.NewValueIsInvalidError(p.Code())
		}
		catalog.listing = append(catalog.listing, p)
		catalog.byCode[p.Code()] = p
	}

	return catalog, nil
}

// Lookup retrieves a product by its code.
func (c *StaticCatalog) Lookup(_ context.Context, code string) (*product.Product, error) {
	p, ok := c.byCode[code]
	if !ok {
		return nil, errs.NewObjectNotFoundError("product", code)
	}
	return p, nil
}

// List retrieves the full catalog in listing order.
func (c *StaticCatalog) List(_ context.Context) ([]*product.Product, error) {
	return slices.Clone(c.listing), nil
}
