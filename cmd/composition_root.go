package cmd

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/adapters/out/inmemory"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/jobs"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use cases. It owns the process-wide
// singletons: the capability index holder, the order number generator, and
// the static product catalog.
type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	catalog      *inmemory.StaticCatalog
	indexHolder  *services.CapabilityIndexHolder
	orderNumbers *kernel.OrderNumberGenerator
	logger       *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	products, err := SampleCatalog()
	if err != nil {
		return nil, err
	}

	catalog, err := inmemory.NewStaticCatalog(products)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:      catalog,
		indexHolder:  services.NewCapabilityIndexHolder(),
		orderNumbers: kernel.NewOrderNumberGenerator(),
		logger:       logger,
	}, nil
}

func (c *CompositionRoot) CreateStaffLoginCommandHandler() commands.StaffLoginCommandHandler {
	var f commands.StaffUoWFactory = FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStaffLoginCommandHandler(f, c.indexHolder)
}

func (c *CompositionRoot) CreateStaffLogoutCommandHandler() commands.StaffLogoutCommandHandler {
	var f commands.StaffUoWFactory = FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStaffLogoutCommandHandler(f, c.indexHolder)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.catalog, c.orderNumbers)
}

func (c *CompositionRoot) CreateProcessOrdersCommandHandler() commands.ProcessOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	observer := func(e services.UnmetCapability) {
		c.logger.Info("order waiting for capability",
			"order", e.OrderNumber.String(),
			"category", e.Category.String(),
		)
	}
	return commands.NewProcessOrdersCommandHandler(f, c.indexHolder, observer)
}

func (c *CompositionRoot) CreateCompleteOrderItemCommandHandler() commands.CompleteOrderItemCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderItemCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAvailableProductsQueryHandler() queries.GetAvailableProductsQueryHandler {
	return queries.NewGetAvailableProductsQueryHandler(c.catalog, c.indexHolder)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var f commands.StaffUoWFactory = FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
	return jobs.NewJobManager(c.CreateProcessOrdersCommandHandler(), f, c.indexHolder, c.logger)
}

// SeedStaffRegistry inserts the sample roster for staff members that do not
// exist yet. Existing members keep their stored login state.
func (c *CompositionRoot) SeedStaffRegistry(ctx context.Context) error {
	roster, err := SampleRoster()
	if err != nil {
		return err
	}

	uow := c.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.StaffRepository()
	for _, member := range roster {
		_, getErr := repo.Get(ctx, member.ID())
		if getErr == nil {
			continue
		}
		if !errors.Is(getErr, errs.ErrObjectNotFound) {
			return getErr
		}
		if addErr := repo.Add(ctx, member); addErr != nil {
			return addErr
		}
	}

	return uow.Commit(ctx)
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
