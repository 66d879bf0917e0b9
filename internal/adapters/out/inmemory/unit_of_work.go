package inmemory

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/product"
	"dispatch/internal/core/domain/model/staff"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

var (
	ErrNoActiveTransaction = errors.New("no active transaction")
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
)

// staffRecord is the stored snapshot of a staff aggregate. Records keep plain
// state rather than aggregate pointers so that uncommitted domain mutations
// never leak into the store.
type staffRecord struct {
	id       string
	name     string
	skills   []product.Category
	loggedIn bool
}

// orderRecord is the stored snapshot of an order aggregate.
type orderRecord struct {
	number      kernel.OrderNumber
	items       []order.Item
	status      order.Status
	createdAt   time.Time
	completedAt *time.Time
}

// Store holds staff and order records behind one mutex. Begin acquires the
// lock and Commit/Rollback release it, so each transaction observes and
// mutates a consistent snapshot. Insertion order of both collections is
// preserved for registry and queue semantics.
type Store struct {
	mu       sync.Mutex
	staffSeq []string
	staff    map[string]staffRecord
	orderSeq []string
	orders   map[string]orderRecord
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		staff:  make(map[string]staffRecord),
		orders: make(map[string]orderRecord),
	}
}

// UnitOfWorkFactory creates unit of work instances sharing one store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory bound to the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork against the shared store.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork serializes one business transaction against the store. Writes
// apply immediately under the store lock and are recorded in an undo log, so
// reads within the transaction see earlier writes and Rollback restores the
// pre-transaction state.
type UnitOfWork struct {
	store  *Store
	active bool
	undo   []func()
}

// Begin acquires the store lock. Calling Begin again on an active unit of
// work is a no-op.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}

	uow.store.mu.Lock()
	uow.active = true
	uow.undo = uow.undo[:0]
	return nil
}

// Commit keeps all applied changes and releases the store lock.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.undo = nil
	uow.active = false
	uow.store.mu.Unlock()
	return nil
}

// Rollback reverts all changes applied in this transaction, newest first, and
// releases the store lock.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	for i := len(uow.undo) - 1; i >= 0; i-- {
		uow.undo[i]()
	}
	uow.undo = nil
	uow.active = false
	uow.store.mu.Unlock()
	return nil
}

// StaffRepository returns a staff repository bound to this transaction.
func (uow *UnitOfWork) StaffRepository() ports.StaffRepository {
	return &staffRepository{uow: uow}
}

// OrderRepository returns an order repository bound to this transaction.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{uow: uow}
}

type staffRepository struct {
	uow *UnitOfWork
}

func staffToRecord(member *staff.Staff) staffRecord {
	return staffRecord{
		id:       member.ID(),
		name:     member.Name(),
		skills:   member.Skills(),
		loggedIn: member.IsLoggedIn(),
	}
}

func staffFromRecord(rec staffRecord) (*staff.Staff, error) {
	return staff.RestoreStaff(rec.id, rec.name, slices.Clone(rec.skills), rec.loggedIn)
}

func (r *staffRepository) Add(_ context.Context, member *staff.Staff) error {
	if err := member.Validate(); err != nil {
		return err
	}
	if !r.uow.active {
		return ErrNoActiveTransaction
	}

	store := r.uow.store
	if _, exists := store.staff[member.ID()]; exists {
		return ErrDuplicateIdentifier
	}

	id := member.ID()
	store.staff[id] = staffToRecord(member)
	store.staffSeq = append(store.staffSeq, id)
	r.uow.undo = append(r.uow.undo, func() {
		delete(store.staff, id)
		store.staffSeq = store.staffSeq[:len(store.staffSeq)-1]
	})
	return nil
}

func (r *staffRepository) Update(_ context.Context, member *staff.Staff) error {
	if err := member.Validate(); err != nil {
		return err
	}
	if !r.uow.active {
		return ErrNoActiveTransaction
	}

	store := r.uow.store
	previous, exists := store.staff[member.ID()]
	if !exists {
		return errs.NewObjectNotFoundError("staff", member.ID())
	}

	id := member.ID()
	store.staff[id] = staffToRecord(member)
	r.uow.undo = append(r.uow.undo, func() {
		store.staff[id] = previous
	})
	return nil
}

func (r *staffRepository) Get(_ context.Context, id string) (*staff.Staff, error) {
	if !r.uow.active {
		return nil, ErrNoActiveTransaction
	}

	rec, exists := r.uow.store.staff[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("staff", id)
	}
	return staffFromRecord(rec)
}

func (r *staffRepository) GetAll(_ context.Context) ([]*staff.Staff, error) {
	if !r.uow.active {
		return nil, ErrNoActiveTransaction
	}

	store := r.uow.store
	members := make([]*staff.Staff, 0, len(store.staffSeq))
	for _, id := range store.staffSeq {
		member, err := staffFromRecord(store.staff[id])
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, nil
}

type orderRepository struct {
	uow *UnitOfWork
}

func orderToRecord(aggregate *order.Order) orderRecord {
	return orderRecord{
		number:      aggregate.Number(),
		items:       aggregate.Items(),
		status:      aggregate.Status(),
		createdAt:   aggregate.CreatedAt(),
		completedAt: aggregate.CompletedAt(),
	}
}

func orderFromRecord(rec orderRecord) (*order.Order, error) {
	return order.RestoreOrder(rec.number, slices.Clone(rec.items), rec.status, rec.createdAt, rec.completedAt)
}

func (r *orderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.uow.active {
		return ErrNoActiveTransaction
	}

	store := r.uow.store
	number := aggregate.Number().String()
	if _, exists := store.orders[number]; exists {
		return ErrDuplicateIdentifier
	}

	store.orders[number] = orderToRecord(aggregate)
	store.orderSeq = append(store.orderSeq, number)
	r.uow.undo = append(r.uow.undo, func() {
		delete(store.orders, number)
		store.orderSeq = store.orderSeq[:len(store.orderSeq)-1]
	})
	return nil
}

func (r *orderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.uow.active {
		return ErrNoActiveTransaction
	}

	store := r.uow.store
	number := aggregate.Number().String()
	previous, exists := store.orders[number]
	if !exists {
		return errs.NewObjectNotFoundError("order", number)
	}

	store.orders[number] = orderToRecord(aggregate)
	r.uow.undo = append(r.uow.undo, func() {
		store.orders[number] = previous
	})
	return nil
}

func (r *orderRepository) GetByNumber(_ context.Context, number kernel.OrderNumber) (*order.Order, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}
	if !r.uow.active {
		return nil, ErrNoActiveTransaction
	}

	rec, exists := r.uow.store.orders[number.String()]
	if !exists {
		return nil, errs.NewObjectNotFoundError("order", number.String())
	}
	return orderFromRecord(rec)
}

func (r *orderRepository) GetAllInPlacedStatus(ctx context.Context) ([]*order.Order, error) {
	return r.GetAllByStatus(ctx, order.Placed)
}

func (r *orderRepository) GetAllByStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	if !r.uow.active {
		return nil, ErrNoActiveTransaction
	}

	store := r.uow.store
	matching := make([]*order.Order, 0)
	for _, number := range store.orderSeq {
		rec := store.orders[number]
		if rec.status != status {
			continue
		}
		aggregate, err := orderFromRecord(rec)
		if err != nil {
			return nil, err
		}
		matching = append(matching, aggregate)
	}
	return matching, nil
}
