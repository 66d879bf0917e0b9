package inmemory_test

import (
	"testing"

	"dispatch/internal/adapters/out/inmemory"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/product"
	"dispatch/internal/core/domain/model/staff"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderNumbers = kernel.NewOrderNumberGenerator()

func newStoredOrder(t *testing.T) *order.Order {
	t.Helper()
	unitPrice, err := kernel.NewPrice(5.99)
	require.NoError(t, err)
	item, err := order.NewItem("S001", 1, nil, product.Sandwich, unitPrice)
	require.NoError(t, err)
	aggregate, err := order.NewOrder(orderNumbers.Next(), []order.Item{item})
	require.NoError(t, err)
	return aggregate
}

func TestUnitOfWork_CommitPersistsChanges(t *testing.T) {
	ctx := t.Context()
	factory := inmemory.NewUnitOfWorkFactory(inmemory.NewStore())

	member, err := staff.NewStaff("S004", "Monica", []product.Category{product.Sandwich})
	require.NoError(t, err)
	aggregate := newStoredOrder(t)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.StaffRepository().Add(ctx, member))
	require.NoError(t, uow.OrderRepository().Add(ctx, aggregate))
	require.NoError(t, uow.Commit(ctx))

	verify := factory.Create()
	require.NoError(t, verify.Begin(ctx))
	defer func() { _ = verify.Rollback(ctx) }()

	restored, err := verify.StaffRepository().Get(ctx, "S004")
	require.NoError(t, err)
	assert.True(t, restored.IsEqual(member))

	restoredOrder, err := verify.OrderRepository().GetByNumber(ctx, aggregate.Number())
	require.NoError(t, err)
	assert.True(t, restoredOrder.IsEqual(aggregate))
	assert.Equal(t, order.Placed, restoredOrder.Status())
}

func TestUnitOfWork_RollbackDiscardsChanges(t *testing.T) {
	ctx := t.Context()
	factory := inmemory.NewUnitOfWorkFactory(inmemory.NewStore())
	aggregate := newStoredOrder(t)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, aggregate))
	require.NoError(t, uow.Rollback(ctx))

	verify := factory.Create()
	require.NoError(t, verify.Begin(ctx))
	defer func() { _ = verify.Rollback(ctx) }()

	_, err := verify.OrderRepository().GetByNumber(ctx, aggregate.Number())
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUnitOfWork_RollbackRestoresPreviousRecord(t *testing.T) {
	ctx := t.Context()
	factory := inmemory.NewUnitOfWorkFactory(inmemory.NewStore())

	member, err := staff.NewStaff("S005", "Ross", []product.Category{product.Drinks})
	require.NoError(t, err)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.StaffRepository().Add(ctx, member))
	require.NoError(t, uow.Commit(ctx))

	// Log in, then roll the transaction back; the stored record stays logged out.
	mutate := factory.Create()
	require.NoError(t, mutate.Begin(ctx))
	loaded, err := mutate.StaffRepository().Get(ctx, "S005")
	require.NoError(t, err)
	loaded.Login()
	require.NoError(t, mutate.StaffRepository().Update(ctx, loaded))
	require.NoError(t, mutate.Rollback(ctx))

	verify := factory.Create()
	require.NoError(t, verify.Begin(ctx))
	defer func() { _ = verify.Rollback(ctx) }()

	restored, err := verify.StaffRepository().Get(ctx, "S005")
	require.NoError(t, err)
	assert.False(t, restored.IsLoggedIn())
}

func TestUnitOfWork_ReadsSeeEarlierWrites(t *testing.T) {
	ctx := t.Context()
	factory := inmemory.NewUnitOfWorkFactory(inmemory.NewStore())
	aggregate := newStoredOrder(t)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	require.NoError(t, uow.OrderRepository().Add(ctx, aggregate))

	pending, err := uow.OrderRepository().GetAllInPlacedStatus(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.True(t, pending[0].IsEqual(aggregate))
}

func TestUnitOfWork_QueueOrderPreserved(t *testing.T) {
	ctx := t.Context()
	factory := inmemory.NewUnitOfWorkFactory(inmemory.NewStore())

	first := newStoredOrder(t)
	second := newStoredOrder(t)
	third := newStoredOrder(t)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	for _, aggregate := range []*order.Order{first, second, third} {
		require.NoError(t, uow.OrderRepository().Add(ctx, aggregate))
	}

	require.NoError(t, second.Start())
	require.NoError(t, uow.OrderRepository().Update(ctx, second))

	pending, err := uow.OrderRepository().GetAllInPlacedStatus(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.True(t, pending[0].IsEqual(first))
	assert.True(t, pending[1].IsEqual(third))
	require.NoError(t, uow.Commit(ctx))
}

func TestUnitOfWork_DuplicateAddRejected(t *testing.T) {
	ctx := t.Context()
	factory := inmemory.NewUnitOfWorkFactory(inmemory.NewStore())
	aggregate := newStoredOrder(t)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	require.NoError(t, uow.OrderRepository().Add(ctx, aggregate))
	err := uow.OrderRepository().Add(ctx, aggregate)

	require.Error(t, err)
	require.ErrorIs(t, err, inmemory.ErrDuplicateIdentifier)
}

func TestUnitOfWork_CommitWithoutBegin(t *testing.T) {
	factory := inmemory.NewUnitOfWorkFactory(inmemory.NewStore())
	uow := factory.Create()

	err := uow.Commit(t.Context())

	require.Error(t, err)
	require.ErrorIs(t, err, inmemory.ErrNoActiveTransaction)
}

func TestStaticCatalog(t *testing.T) {
	newProduct := func(t *testing.T, code string, amount float64, category product.Category) *product.Product {
		t.Helper()
		price, err := kernel.NewPrice(amount)
		require.NoError(t, err)
		p, err := product.NewProduct(code, code+" description", price, category)
		require.NoError(t, err)
		return p
	}

	t.Run("should look up products by code", func(t *testing.T) {
		catalog, err := inmemory.NewStaticCatalog([]*product.Product{
			newProduct(t, "P001", 8.99, product.VegPizza),
			newProduct(t, "D001", 1.99, product.Drinks),
		})
		require.NoError(t, err)

		p, err := catalog.Lookup(t.Context(), "P001")

		require.NoError(t, err)
		assert.Equal(t, product.VegPizza, p.Category())
	})

	t.Run("should return not found for unknown code", func(t *testing.T) {
		catalog, err := inmemory.NewStaticCatalog(nil)
		require.NoError(t, err)

		_, err = catalog.Lookup(t.Context(), "UNKNOWN")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should list products in listing order", func(t *testing.T) {
		catalog, err := inmemory.NewStaticCatalog([]*product.Product{
			newProduct(t, "P001", 8.99, product.VegPizza),
			newProduct(t, "B001", 7.99, product.Burger),
		})
		require.NoError(t, err)

		listing, err := catalog.List(t.Context())

		require.NoError(t, err)
		require.Len(t, listing, 2)
		assert.Equal(t, "P001", listing[0].Code())
		assert.Equal(t, "B001", listing[1].Code())
	})

	t.Run("should reject duplicate codes", func(t *testing.T) {
		_, err := inmemory.NewStaticCatalog([]*product.Product{
			newProduct(t, "P001", 8.99, product.VegPizza),
			newProduct(t, "P001", 9.99, product.VegPizza),
		})

		require.Error(t, err)
	})
}
