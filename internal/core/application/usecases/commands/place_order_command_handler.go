package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

var ErrInvalidOrder = errors.New("no requested item resolves to a known product")

// PlaceOrderCommandHandler handles the business logic for order placement.
// Resolves item requests against the catalog, snapshots each product's
// category and price onto the order items, and enqueues the order in Placed
// status with a freshly issued order number.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, catalog, orderNumbers)
//	cmd, _ := NewPlaceOrderCommand([]ItemRequest{{ProductCode: "P001", Quantity: 2}})
//
//	placed, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrInvalidOrder) {
//	    return fmt.Errorf("no known products in request: %w", err)
//	}
//	fmt.Printf("order %s placed", placed.Number())
type PlaceOrderCommandHandler struct {
	uowFactory   OrderUoWFactory
	catalog      ports.Catalog
	orderNumbers *kernel.OrderNumberGenerator
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence, the catalog the
// item requests are resolved against, and the process-wide order number
// generator.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.Catalog,
	orderNumbers *kernel.OrderNumberGenerator,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:   uowFactory,
		catalog:      catalog,
		orderNumbers: orderNumbers,
	}
}

// Handle resolves each request via the catalog. Unknown product codes are
// silently dropped from the order rather than failing the whole call; if
// nothing survives filtering, ErrInvalidOrder is returned and no order is
// enqueued. On success the created order is returned in Placed status.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, command PlaceOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(command.ItemRequests()))
	for _, request := range command.ItemRequests() {
		resolved, err := h.catalog.Lookup(ctx, request.ProductCode)
		if errors.Is(err, errs.ErrObjectNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(resolved.Code(), request.Quantity, request.Toppings, resolved.Category(), resolved.Price())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, ErrInvalidOrder
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	placed, err := order.NewOrder(h.orderNumbers.Next(), items)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
