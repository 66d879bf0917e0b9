package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

// ProcessOrdersCommandHandler runs one dispatch pass.
// Loads the pending queue, scans it against one capability index snapshot,
// and persists the status change of every order the dispatcher started.
// Skipped orders stay queued and become eligible again on the next pass;
// re-invoking the pass is the system's only retry mechanism.
//
// Example:
//
//	handler := NewProcessOrdersCommandHandler(uowFactory, indexHolder, func(e services.UnmetCapability) {
//	    logger.Info("order waiting", "order", e.OrderNumber, "category", e.Category)
//	})
//	started, err := handler.Handle(ctx, NewProcessOrdersCommand())
type ProcessOrdersCommandHandler struct {
	uowFactory  OrderUoWFactory
	indexHolder *services.CapabilityIndexHolder
	observer    services.UnmetCapabilityObserver
}

// NewProcessOrdersCommandHandler creates a handler for dispatch passes.
// Requires an OrderUoWFactory for transactional persistence, the holder the
// capability index is read from, and an observer notified once per skipped
// order (nil for silent dispatch).
func NewProcessOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	indexHolder *services.CapabilityIndexHolder,
	observer services.UnmetCapabilityObserver,
) ProcessOrdersCommandHandler {
	return ProcessOrdersCommandHandler{
		uowFactory:  uowFactory,
		indexHolder: indexHolder,
		observer:    observer,
	}
}

// Handle processes the dispatch pass command.
// Returns the orders that transitioned to InProgress during this pass, in
// queue order. A pass with nothing eligible returns an empty result, not an
// error.
func (h ProcessOrdersCommandHandler) Handle(ctx context.Context, command ProcessOrdersCommand) ([]*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	pending, err := orderRepo.GetAllInPlacedStatus(ctx)
	if err != nil {
		return nil, err
	}

	dispatcher := services.NewOrderDispatcher(h.observer)
	started, err := dispatcher.Dispatch(pending, h.indexHolder.Snapshot())
	if err != nil {
		return nil, err
	}

	for _, assigned := range started {
		if err = orderRepo.Update(ctx, assigned); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return started, nil
}
