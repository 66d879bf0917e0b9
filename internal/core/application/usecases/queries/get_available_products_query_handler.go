package queries

import (
	"context"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// GetAvailableProductsQueryHandler filters the catalog by current staff
// coverage. Unlike the order queries it never touches the database: the
// catalog is reference data and the capability index lives in memory.
type GetAvailableProductsQueryHandler struct {
	catalog     ports.Catalog
	indexHolder *services.CapabilityIndexHolder
}

// NewGetAvailableProductsQueryHandler creates a handler for availability queries.
// Requires the catalog and the holder the capability index is read from.
func NewGetAvailableProductsQueryHandler(
	catalog ports.Catalog,
	indexHolder *services.CapabilityIndexHolder,
) GetAvailableProductsQueryHandler {
	return GetAvailableProductsQueryHandler{
		catalog:     catalog,
		indexHolder: indexHolder,
	}
}

// Handle executes the query against one index snapshot.
// Returns products in catalog listing order; a product appears exactly when
// its category has at least one available staff member. With no one logged
// in the result is empty, not an error.
func (h GetAvailableProductsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableProductsQuery,
) ([]GetAvailableProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	listing, err := h.catalog.List(ctx)
	if err != nil {
		return nil, err
	}

	index := h.indexHolder.Snapshot()

	available := make([]GetAvailableProductsQueryResponse, 0, len(listing))
	for _, p := range listing {
		if !index.HasAvailable(p.Category()) {
			continue
		}
		available = append(available, GetAvailableProductsQueryResponse{
			Code:        p.Code(),
			Description: p.Description(),
			Price:       p.Price().Amount(),
			Category:    p.Category().String(),
		})
	}

	return available, nil
}
