package cmd

import (
	"log/slog"
	"os"

	httpin "zoneship/internal/adapters/in/http"
	"zoneship/internal/adapters/out/postgres"
	"zoneship/internal/adapters/out/postgres/managerrepo"
	"zoneship/internal/core/application/usecases/commands"
	"zoneship/internal/core/application/usecases/queries"
	"zoneship/internal/core/domain/services"
	"zoneship/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.CreateDeliveryUoWFactory = FuncCreateDeliveryUoWFactory(func() commands.CreateDeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f, services.NewTariffCalculator())
}

func (c *CompositionRoot) CreateTransitionDeliveryCommandHandler() commands.TransitionDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateLocationCommandHandler() commands.CreateLocationCommandHandler {
	var f commands.LocationUoWFactory = FuncLocationUoWFactory(func() commands.LocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateUpsertServiceTierCommandHandler() commands.UpsertServiceTierCommandHandler {
	var f commands.ServiceTierUoWFactory = FuncServiceTierUoWFactory(func() commands.ServiceTierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpsertServiceTierCommandHandler(f)
}

func (c *CompositionRoot) CreateUpsertZoneTariffCommandHandler() commands.UpsertZoneTariffCommandHandler {
	var f commands.ZoneTariffUoWFactory = FuncZoneTariffUoWFactory(func() commands.ZoneTariffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpsertZoneTariffCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateZoneManagerCommandHandler() commands.CreateZoneManagerCommandHandler {
	var f commands.ZoneManagerUoWFactory = FuncZoneManagerUoWFactory(func() commands.ZoneManagerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateZoneManagerCommandHandler(f)
}

func (c *CompositionRoot) CreateGetQuoteQueryHandler() queries.GetQuoteQueryHandler {
	return queries.NewGetQuoteQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDeliveriesByZoneQueryHandler() queries.ListDeliveriesByZoneQueryHandler {
	return queries.NewListDeliveriesByZoneQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDueScheduledDeliveriesQueryHandler() queries.GetDueScheduledDeliveriesQueryHandler {
	return queries.NewGetDueScheduledDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateActorResolver() *httpin.ActorResolver {
	return httpin.NewActorResolver(c.config.AdminToken, managerrepo.NewGormZoneManagerRepository(c.gormDB))
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateDeliveryCommandHandler(),
		c.CreateTransitionDeliveryCommandHandler(),
		c.CreateAssignDriverCommandHandler(),
		c.CreateCreateLocationCommandHandler(),
		c.CreateUpsertServiceTierCommandHandler(),
		c.CreateUpsertZoneTariffCommandHandler(),
		c.CreateCreateZoneManagerCommandHandler(),
		c.CreateGetQuoteQueryHandler(),
		c.CreateListDeliveriesByZoneQueryHandler(),
		c.CreateActorResolver(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	return jobs.NewJobManager(
		c.CreateGetDueScheduledDeliveriesQueryHandler(),
		c.CreateTransitionDeliveryCommandHandler(),
		logger,
	)
}

type FuncCreateDeliveryUoWFactory func() commands.CreateDeliveryUoW

func (f FuncCreateDeliveryUoWFactory) Create() commands.CreateDeliveryUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncLocationUoWFactory func() commands.LocationUoW

func (f FuncLocationUoWFactory) Create() commands.LocationUoW {
	return f()
}

type FuncServiceTierUoWFactory func() commands.ServiceTierUoW

func (f FuncServiceTierUoWFactory) Create() commands.ServiceTierUoW {
	return f()
}

type FuncZoneTariffUoWFactory func() commands.ZoneTariffUoW

func (f FuncZoneTariffUoWFactory) Create() commands.ZoneTariffUoW {
	return f()
}

type FuncZoneManagerUoWFactory func() commands.ZoneManagerUoW

func (f FuncZoneManagerUoWFactory) Create() commands.ZoneManagerUoW {
	return f()
}
