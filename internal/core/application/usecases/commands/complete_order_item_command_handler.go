package commands

import (
	"context"
	"errors"

	"dispatch/internal/pkg/errs"
)

var ErrOrderNotFound = errors.New("order not found")

// CompleteOrderItemCommandHandler handles the business logic for order
// completion. Applies the whole-order completion policy: the named order
// moves to Complete and gets its completion timestamp stamped, regardless of
// which item was reported.
//
// Example:
//
//	handler := NewCompleteOrderItemCommandHandler(uowFactory)
//	cmd, _ := NewCompleteOrderItemCommand(number, "P001")
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrOrderNotFound) {
//	    log.Printf("unknown order number")
//	}
type CompleteOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteOrderItemCommandHandler creates a handler for order completion.
// Requires an OrderUoWFactory for transactional persistence.
func NewCompleteOrderItemCommandHandler(uowFactory OrderUoWFactory) CompleteOrderItemCommandHandler {
	return CompleteOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
// Returns ErrOrderNotFound when no order carries the given number; nothing
// is mutated in that case. Completing an already Complete order is an
// idempotent re-stamp. Completing an order still in Placed status fails,
// since the lifecycle never skips dispatch.
func (h CompleteOrderItemCommandHandler) Handle(ctx context.Context, command CompleteOrderItemCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetByNumber(ctx, command.OrderNumber())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	if err = aggregate.Complete(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
