package cmd

import (
	"log/slog"

	httpin "planner/internal/adapters/in/http"
	"planner/internal/adapters/out/pdf"
	"planner/internal/adapters/out/postgres"
	"planner/internal/core/application/usecases/commands"
	"planner/internal/core/application/usecases/queries"
	"planner/internal/core/domain/services"
	"planner/internal/core/ports"
	"planner/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	routeCache ports.RouteCache
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, routeCache ports.RouteCache, logger *slog.Logger) CompositionRoot {
	if logger == nil {
		logger = slog.Default()
	}
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		routeCache: routeCache,
		logger:     logger,
	}
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) truckUoW() commands.TruckUoWFactory {
	return FuncTruckUoWFactory(func() commands.TruckUoW {
		return c.uowFactory.Create()
	})
}

// repositories reads outside of a transaction: a unit of work that is never
// begun hands out repositories on the connection pool.
func (c *CompositionRoot) repositories() queries.RepositoriesFactory {
	return FuncRepositoriesFactory(func() queries.Repositories {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateTruckCommandHandler() commands.CreateTruckCommandHandler {
	return commands.NewCreateTruckCommandHandler(c.truckUoW())
}

func (c *CompositionRoot) CreateAddTripCommandHandler() commands.AddTripCommandHandler {
	return commands.NewAddTripCommandHandler(c.truckUoW())
}

func (c *CompositionRoot) CreateRemoveTripCommandHandler() commands.RemoveTripCommandHandler {
	return commands.NewRemoveTripCommandHandler(c.truckUoW(), c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateImportOrdersCommandHandler() commands.ImportOrdersCommandHandler {
	return commands.NewImportOrdersCommandHandler(c.uow(), c.logger)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.uow(), c.logger)
}

func (c *CompositionRoot) CreateEvictSlotCommandHandler() commands.EvictSlotCommandHandler {
	return commands.NewEvictSlotCommandHandler(c.uow(), c.logger)
}

func (c *CompositionRoot) CreateSetSlotShapeCommandHandler() commands.SetSlotShapeCommandHandler {
	return commands.NewSetSlotShapeCommandHandler(c.truckUoW(), c.logger)
}

func (c *CompositionRoot) CreateGetTrucksForDateQueryHandler() queries.GetTrucksForDateQueryHandler {
	return queries.NewGetTrucksForDateQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMaxPlaceableQueryHandler() queries.GetMaxPlaceableQueryHandler {
	return queries.NewGetMaxPlaceableQueryHandler(c.repositories())
}

func (c *CompositionRoot) CreateGetTripRouteQueryHandler() queries.GetTripRouteQueryHandler {
	return queries.NewGetTripRouteQueryHandler(c.repositories())
}

func (c *CompositionRoot) CreateGetTruckRouteQueryHandler() queries.GetTruckRouteQueryHandler {
	return queries.NewGetTruckRouteQueryHandler(
		c.repositories(),
		c.routeCache,
		services.NewRouteOptimizer(c.configs.RouteMaxPasses),
		c.configs.Depot,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetLoadingSheetQueryHandler() queries.GetLoadingSheetQueryHandler {
	return queries.NewGetLoadingSheetQueryHandler(c.repositories(), pdf.NewLoadingSheet())
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateTruck:   c.CreateCreateTruckCommandHandler(),
		AddTrip:       c.CreateAddTripCommandHandler(),
		RemoveTrip:    c.CreateRemoveTripCommandHandler(),
		CreateOrder:   c.CreateCreateOrderCommandHandler(),
		ImportOrders:  c.CreateImportOrdersCommandHandler(),
		PlaceOrder:    c.CreatePlaceOrderCommandHandler(),
		EvictSlot:     c.CreateEvictSlotCommandHandler(),
		SetSlotShape:  c.CreateSetSlotShapeCommandHandler(),
		TrucksForDate: c.CreateGetTrucksForDateQueryHandler(),
		MaxPlaceable:  c.CreateGetMaxPlaceableQueryHandler(),
		TripRoute:     c.CreateGetTripRouteQueryHandler(),
		TruckRoute:    c.CreateGetTruckRouteQueryHandler(),
		LoadingSheet:  c.CreateGetLoadingSheetQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetTrucksForDateQueryHandler(),
		c.CreateGetTruckRouteQueryHandler(),
		c.configs.RouteWarmupSchedule,
		c.logger,
	)
}

type FuncTruckUoWFactory func() commands.TruckUoW

func (f FuncTruckUoWFactory) Create() commands.TruckUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncRepositoriesFactory func() queries.Repositories

func (f FuncRepositoriesFactory) Create() queries.Repositories {
	return f()
}
