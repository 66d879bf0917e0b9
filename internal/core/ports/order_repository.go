package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying orders by their
// lifecycle status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByNumber retrieves an order aggregate by its order number.
	// Returns errs.ObjectNotFoundError when no such order exists.
	GetByNumber(ctx context.Context, number kernel.OrderNumber) (*order.Order, error)

	// GetAllInPlacedStatus retrieves the pending queue: all orders still in
	// Placed status, oldest placement first. The dispatcher scans this queue
	// front to back.
	GetAllInPlacedStatus(ctx context.Context) ([]*order.Order, error)

	// GetAllByStatus retrieves all orders in the given status, oldest
	// placement first.
	GetAllByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
