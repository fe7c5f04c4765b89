package locationrepo

import (
	"context"
	"errors"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLocationRepository implements LocationRepository using GORM.
type GormLocationRepository struct {
	db *gorm.DB
}

// NewGormLocationRepository creates a new GORM location repository.
func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// Add saves a location. Used by the startup seeder; existing rows are
// left untouched.
func (r *GormLocationRepository) Add(ctx context.Context, loc location.Location) error {
	if err := loc.Validate(); err != nil {
		return err
	}

	dto := fromDomain(loc)
	return r.db.WithContext(ctx).
		Where("un_locode = ?", dto.UnLocode).
		FirstOrCreate(&dto).Error
}

// Get resolves a UN location code.
func (r *GormLocationRepository) Get(ctx context.Context, unLocode kernel.UnLocode) (location.Location, error) {
	if err := unLocode.Validate(); err != nil {
		return location.Location{}, err
	}

	var dto LocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "un_locode = ?", unLocode.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return location.Location{}, errs.NewObjectNotFoundError("location", unLocode.String())
		}
		return location.Location{}, err
	}

	return toDomain(dto)
}

// GetAll retrieves all known locations ordered by code.
func (r *GormLocationRepository) GetAll(ctx context.Context) ([]location.Location, error) {
	var dtos []LocationDTO
	if err := r.db.WithContext(ctx).Order("un_locode").Find(&dtos).Error; err != nil {
		return nil, err
	}

	locations := make([]location.Location, 0, len(dtos))
	for _, dto := range dtos {
		loc, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}

	return locations, nil
}
