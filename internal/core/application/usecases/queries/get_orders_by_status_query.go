// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS architecture: handlers read thin
// projections directly, bypassing aggregate reconstruction.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery retrieves all orders in a given lifecycle status,
// queue order preserved.
//
// Example:
//
//	query, err := NewGetOrdersByStatusQuery(order.Placed)
//	if err != nil {
//	    return fmt.Errorf("invalid status: %w", err)
//	}
//
//	handler := NewGetOrdersByStatusQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type GetOrdersByStatusQuery struct { //nolint:recvcheck //using for validation
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query for orders in the given status.
// Validates that the status is a member of the lifecycle enumeration.
func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return GetOrdersByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByStatusQueryIsNotConstructed if validation fails.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the lifecycle status being queried.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// GetOrdersByStatusItemResponse represents one line of a queried order.
type GetOrdersByStatusItemResponse struct {
	ProductCode string
	Quantity    int
	Toppings    []string
	Category    string
	LinePrice   float64
}

// GetOrdersByStatusQueryResponse represents one queried order with its items,
// lifecycle status, and timestamps.
type GetOrdersByStatusQueryResponse struct {
	Number      string
	Status      string
	CreatedAt   time.Time
	CompletedAt *time.Time
	Items       []GetOrdersByStatusItemResponse
}
