package cargorepo

import (
	"context"
	"errors"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/core/ports"
	"cargotracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCargoRepository implements CargoRepository using GORM.
//
// Loading a cargo reconstructs the full aggregate: leg voyages are resolved
// through the voyage repository and the delivery snapshot is re-derived from
// the handling history rather than read back from its columns. The stored
// snapshot columns serve the read-side queries; the derivation is
// deterministic, so both views agree after every commit.
type GormCargoRepository struct {
	db               *gorm.DB
	tracker          aggregateTracker
	voyageRepository ports.VoyageRepository
	eventRepository  ports.HandlingEventRepository
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.TrackingID, aggregate any)
}

// NewGormCargoRepository creates a new GORM cargo repository.
func NewGormCargoRepository(
	db *gorm.DB,
	tracker aggregateTracker,
	voyageRepository ports.VoyageRepository,
	eventRepository ports.HandlingEventRepository,
) *GormCargoRepository {
	return &GormCargoRepository{
		db:               db,
		tracker:          tracker,
		voyageRepository: voyageRepository,
		eventRepository:  eventRepository,
	}
}

// Add saves a newly booked cargo to the database.
func (r *GormCargoRepository) Add(ctx context.Context, aggregate *cargo.Cargo) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.TrackingID(), aggregate)
	return nil
}

// Update saves an existing cargo, replacing its itinerary legs and delivery
// snapshot wholesale.
func (r *GormCargoRepository) Update(ctx context.Context, aggregate *cargo.Cargo) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	legs := dto.Legs
	dto.Legs = nil

	result := r.db.WithContext(ctx).Model(&CargoDTO{}).
		Where("tracking_id = ?", dto.TrackingID).
		Select("*").Omit("tracking_id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).
		Where("cargo_tracking_id = ?", dto.TrackingID).
		Delete(&LegDTO{}).Error; err != nil {
		return err
	}

	if len(legs) > 0 {
		if err := r.db.WithContext(ctx).Create(&legs).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.TrackingID(), aggregate)
	return nil
}

// Get retrieves a cargo by its tracking identity.
func (r *GormCargoRepository) Get(ctx context.Context, trackingID kernel.TrackingID) (*cargo.Cargo, error) {
	if err := trackingID.Validate(); err != nil {
		return nil, err
	}

	var dto CargoDTO
	err := r.db.WithContext(ctx).
		Preload("Legs", func(db *gorm.DB) *gorm.DB {
			return db.Order("leg_index")
		}).
		First(&dto, "tracking_id = ?", trackingID.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cargo", trackingID.String())
		}
		return nil, err
	}

	return r.toDomain(ctx, dto)
}

// GetAll retrieves every booked cargo ordered by tracking identity.
func (r *GormCargoRepository) GetAll(ctx context.Context) ([]*cargo.Cargo, error) {
	var dtos []CargoDTO
	err := r.db.WithContext(ctx).
		Preload("Legs", func(db *gorm.DB) *gorm.DB {
			return db.Order("leg_index")
		}).
		Order("tracking_id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	cargos := make([]*cargo.Cargo, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, cargoErr := r.toDomain(ctx, dto)
		if cargoErr != nil {
			return nil, cargoErr
		}
		cargos = append(cargos, aggregate)
	}

	return cargos, nil
}

// toDomain reconstructs the full aggregate from its database representation.
func (r *GormCargoRepository) toDomain(ctx context.Context, dto CargoDTO) (*cargo.Cargo, error) {
	trackingID, err := kernel.TrackingIDFromString(dto.TrackingID)
	if err != nil {
		return nil, err
	}

	routeSpecification, err := routeSpecificationToDomain(dto)
	if err != nil {
		return nil, err
	}

	itinerary, err := r.itineraryToDomain(ctx, dto.Legs)
	if err != nil {
		return nil, err
	}

	history, err := r.eventRepository.GetHandlingHistory(ctx, trackingID)
	if err != nil {
		return nil, err
	}

	delivery := cargo.DeriveDelivery(routeSpecification, itinerary, history)
	return cargo.RestoreCargo(trackingID, routeSpecification, itinerary, delivery)
}

func (r *GormCargoRepository) itineraryToDomain(ctx context.Context, dtos []LegDTO) (*cargo.Itinerary, error) {
	if len(dtos) == 0 {
		return nil, nil
	}

	legs := make([]cargo.Leg, 0, len(dtos))
	for _, legDTO := range dtos {
		number, err := voyage.NewNumber(legDTO.VoyageNumber)
		if err != nil {
			return nil, err
		}

		voy, err := r.voyageRepository.Get(ctx, number)
		if err != nil {
			return nil, err
		}

		loadLocation, err := locationFromColumns(legDTO.LoadLocation, legDTO.LoadLocationName)
		if err != nil {
			return nil, err
		}

		unloadLocation, err := locationFromColumns(legDTO.UnloadLocation, legDTO.UnloadLocationName)
		if err != nil {
			return nil, err
		}

		leg, err := cargo.NewLeg(voy, loadLocation, unloadLocation, legDTO.LoadTime, legDTO.UnloadTime)
		if err != nil {
			return nil, err
		}
		legs = append(legs, leg)
	}

	itinerary, err := cargo.NewItinerary(legs)
	if err != nil {
		return nil, err
	}

	return &itinerary, nil
}
