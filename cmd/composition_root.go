package cmd

import (
	"context"
	"log/slog"

	adapterhttp "cargotracker/internal/adapters/in/http"
	"cargotracker/internal/adapters/out/postgres"
	"cargotracker/internal/adapters/out/postgres/cargorepo"
	"cargotracker/internal/adapters/out/postgres/eventrepo"
	"cargotracker/internal/adapters/out/postgres/locationrepo"
	"cargotracker/internal/adapters/out/postgres/voyagerepo"
	"cargotracker/internal/adapters/out/routing"
	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/application/usecases/queries"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/core/domain/services"
	"cargotracker/internal/core/ports"
	"cargotracker/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

// MigrateDatabase creates or updates the schema for all persistence DTOs.
func (c *CompositionRoot) MigrateDatabase() error {
	return c.gormDB.AutoMigrate(
		&locationrepo.LocationDTO{},
		&voyagerepo.VoyageDTO{},
		&voyagerepo.CarrierMovementDTO{},
		&cargorepo.CargoDTO{},
		&cargorepo.LegDTO{},
		&eventrepo.HandlingEventDTO{},
	)
}

// SeedReferenceData stores the sample locations and voyages, skipping
// rows that already exist.
func (c *CompositionRoot) SeedReferenceData(ctx context.Context) error {
	locationRepo := locationrepo.NewGormLocationRepository(c.gormDB)
	for _, loc := range location.SampleLocations() {
		if err := locationRepo.Add(ctx, loc); err != nil {
			return err
		}
	}

	voyageRepo := voyagerepo.NewGormVoyageRepository(c.gormDB)
	for _, voy := range voyage.SampleVoyages() {
		if err := voyageRepo.Add(ctx, voy); err != nil {
			return err
		}
	}

	return nil
}

func (c *CompositionRoot) CreateLocationRepository() ports.LocationRepository {
	return locationrepo.NewGormLocationRepository(c.gormDB)
}

func (c *CompositionRoot) CreateVoyageRepository() ports.VoyageRepository {
	return voyagerepo.NewGormVoyageRepository(c.gormDB)
}

// CreateCargoRepository returns a cargo repository outside any transaction,
// for read paths that do not modify state.
func (c *CompositionRoot) CreateCargoRepository() ports.CargoRepository {
	return c.uowFactory.Create().CargoRepository()
}

func (c *CompositionRoot) CreateRoutingService() services.RoutingService {
	return routing.NewScheduleRoutingService(c.CreateVoyageRepository())
}

func (c *CompositionRoot) CreateBookCargoCommandHandler() commands.BookCargoCommandHandler {
	var f commands.CargoUoWFactory = FuncCargoUoWFactory(func() commands.CargoUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBookCargoCommandHandler(f, c.CreateLocationRepository())
}

func (c *CompositionRoot) CreateAssignCargoToRouteCommandHandler() commands.AssignCargoToRouteCommandHandler {
	return commands.NewAssignCargoToRouteCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateChangeDestinationCommandHandler() commands.ChangeDestinationCommandHandler {
	return commands.NewChangeDestinationCommandHandler(c.createUoWFactory(), c.CreateLocationRepository())
}

func (c *CompositionRoot) CreateRegisterHandlingEventCommandHandler() commands.RegisterHandlingEventCommandHandler {
	factory := services.NewHandlingEventFactory(c.CreateLocationRepository(), c.CreateVoyageRepository())
	return commands.NewRegisterHandlingEventCommandHandler(c.createUoWFactory(), factory)
}

func (c *CompositionRoot) CreateInspectCargoCommandHandler() commands.InspectCargoCommandHandler {
	return commands.NewInspectCargoCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateTrackCargoQueryHandler() queries.TrackCargoQueryHandler {
	return queries.NewTrackCargoQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCargosQueryHandler() queries.ListCargosQueryHandler {
	return queries.NewListCargosQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the REST API server over all use cases.
func (c *CompositionRoot) CreateHTTPServer() *adapterhttp.Server {
	return adapterhttp.NewServer(
		c.CreateBookCargoCommandHandler(),
		c.CreateAssignCargoToRouteCommandHandler(),
		c.CreateChangeDestinationCommandHandler(),
		c.CreateRegisterHandlingEventCommandHandler(),
		c.CreateTrackCargoQueryHandler(),
		c.CreateListCargosQueryHandler(),
		c.CreateCargoRepository(),
		c.CreateLocationRepository(),
		c.CreateVoyageRepository(),
		c.CreateRoutingService(),
	)
}

// CreateJobManager assembles the background jobs.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateListCargosQueryHandler(),
		c.CreateInspectCargoCommandHandler(),
		logger,
	)
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncCargoUoWFactory func() commands.CargoUoW

func (f FuncCargoUoWFactory) Create() commands.CargoUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
