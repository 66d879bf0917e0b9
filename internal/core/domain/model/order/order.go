package order

import (
	"errors"
	"slices"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// Domain errors for order operations.
var (
	// ErrItemsAreRequired is returned when attempting to create an order with no items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a placed order in the dispatch system. It is the aggregate
// root that manages the order lifecycle from placement through dispatch to
// completion.
//
// Order follows these invariants:
//   - Must have a valid unique order number
//   - Must have a non-empty ordered sequence of items
//   - Status transitions are strictly forward-only (Placed -> InProgress -> Complete)
//   - completedAt is set if and only if status is Complete
//   - Can only be created through the NewOrder or RestoreOrder constructors
type Order struct {
	// number is the unique human-readable order identifier
	number kernel.OrderNumber

	// items is the ordered, non-empty sequence of order lines
	items []Item

	// status is the current state in the order lifecycle
	status Status

	// createdAt is the placement timestamp
	createdAt time.Time

	// completedAt is the completion timestamp (nil until Complete)
	completedAt *time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Placed status with the placement time
// stamped. This is the only way to create a valid fresh Order, ensuring all
// business invariants are maintained.
//
// Parameters:
//   - number: Unique order number issued by the kernel generator
//   - items: Non-empty sequence of already validated order lines
//
// Returns a validation error if the number is invalid, the item sequence is
// empty, or any item was not properly constructed.
func NewOrder(number kernel.OrderNumber, items []Item) (*Order, error) {
	o := &Order{
		status:        Placed,
		createdAt:     time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setNumber(number),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, which always starts orders in Placed status, this
// constructor restores an order to its previously persisted lifecycle state.
//
// The status/timestamp consistency invariant is enforced: a completion
// timestamp is required exactly when the restored status is Complete.
func RestoreOrder(
	number kernel.OrderNumber,
	items []Item,
	status Status,
	createdAt time.Time,
	completedAt *time.Time,
) (*Order, error) {
	o, err := NewOrder(number, items)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = status.ValidateCanHaveCompletedAt(completedAt != nil); err != nil {
		return nil, err
	}

	o.status = status
	o.createdAt = createdAt
	o.completedAt = completedAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// constructor. This prevents bypassing validation by directly instantiating
// the struct, and should be called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their order numbers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.number.IsEqual(other.number)
}

// Number returns the order's unique order number.
func (o *Order) Number() kernel.OrderNumber {
	return o.number
}

// Items returns a copy of the order's item sequence in placement order.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// CompletedAt returns the completion timestamp.
// Returns nil while the order is not Complete.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// Start marks the order as picked up by a successful dispatch assignment.
//
// This method enforces the following business rules:
//   - The order must be in Placed status
//   - The transition never skips or regresses states
//
// After a successful call the order's status is InProgress and the order no
// longer belongs to the pending queue.
func (o *Order) Start() error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete marks the whole order as fulfilled and stamps the completion time.
//
// Completing an InProgress order transitions it to Complete. Completing an
// already Complete order is an explicitly idempotent re-stamp of the
// completion time, not an error. Completing a Placed order fails: dispatch
// must happen first.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	now := time.Now()
	o.completedAt = &now
	return nil
}

func (o *Order) setNumber(number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = slices.Clone(items)
	return nil
}
