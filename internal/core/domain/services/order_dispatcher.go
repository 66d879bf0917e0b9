package services

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/product"
)

var ErrDispatcherIsNotConstructed = errors.New("order dispatcher is not constructed")

// UnmetCapability describes why an order stayed queued during a dispatch
// pass: no logged-in staff could cover the named category.
type UnmetCapability struct {
	OrderNumber kernel.OrderNumber
	Category    product.Category
}

// UnmetCapabilityObserver receives one notification per skipped order per
// dispatch pass. A nil observer disables notifications.
type UnmetCapabilityObserver func(UnmetCapability)

// OrderDispatcher advances queued orders whose every item category is covered
// by at least one available staff member.
//
// Dispatch is all-or-nothing per order: an order either has all of its items
// covered and moves to InProgress, or none of it does and it stays Placed in
// its queue position. Earlier orders never block later ones, and skipping an
// order does not consume any capacity, so a pass over an unchanged index is
// idempotent.
type OrderDispatcher struct {
	observer UnmetCapabilityObserver
}

// NewOrderDispatcher creates a dispatcher reporting skipped orders to the
// given observer. Pass nil to dispatch silently.
func NewOrderDispatcher(observer UnmetCapabilityObserver) *OrderDispatcher {
	return &OrderDispatcher{observer: observer}
}

// Dispatch scans the pending queue front to back against one index snapshot
// and starts every fully covered order. It returns the started orders in
// queue order; the caller persists their status change. Orders already past
// Placed are left untouched.
//
// For each skipped order the observer is told the first uncovered category,
// matching item order within the order.
func (d *OrderDispatcher) Dispatch(pending []*order.Order, index CapabilityIndex) ([]*order.Order, error) {
	if d == nil {
		return nil, ErrDispatcherIsNotConstructed
	}

	started := make([]*order.Order, 0, len(pending))
	for _, o := range pending {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if o.Status() != order.Placed {
			continue
		}

		if unmet, ok := d.firstUnmetCategory(o, index); ok {
			if d.observer != nil {
				d.observer(UnmetCapability{OrderNumber: o.Number(), Category: unmet})
			}
			continue
		}

		if err := o.Start(); err != nil {
			return nil, err
		}
		started = append(started, o)
	}
	return started, nil
}

func (d *OrderDispatcher) firstUnmetCategory(o *order.Order, index CapabilityIndex) (product.Category, bool) {
	for _, item := range o.Items() {
		if !index.HasAvailable(item.Category()) {
			return item.Category(), true
		}
	}
	return product.UnknownCategory, false
}
