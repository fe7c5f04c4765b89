package voyagerepo

import (
	"context"
	"errors"

	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVoyageRepository implements VoyageRepository using GORM.
type GormVoyageRepository struct {
	db *gorm.DB
}

// NewGormVoyageRepository creates a new GORM voyage repository.
func NewGormVoyageRepository(db *gorm.DB) *GormVoyageRepository {
	return &GormVoyageRepository{db: db}
}

// Add saves a voyage with its schedule. Used by the startup seeder;
// existing voyages are left untouched.
func (r *GormVoyageRepository) Add(ctx context.Context, voy voyage.Voyage) error {
	if err := voy.Validate(); err != nil {
		return err
	}

	dto := fromDomain(voy)

	var count int64
	if err := r.db.WithContext(ctx).Model(&VoyageDTO{}).
		Where("number = ?", dto.Number).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get resolves a voyage number.
func (r *GormVoyageRepository) Get(ctx context.Context, number voyage.Number) (voyage.Voyage, error) {
	if err := number.Validate(); err != nil {
		return voyage.Voyage{}, err
	}

	var dto VoyageDTO
	err := r.db.WithContext(ctx).
		Preload("Movements", func(db *gorm.DB) *gorm.DB {
			return db.Order("movement_index")
		}).
		First(&dto, "number = ?", number.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return voyage.Voyage{}, errs.NewObjectNotFoundError("voyage", number.String())
		}
		return voyage.Voyage{}, err
	}

	return toDomain(dto)
}

// GetAll retrieves all known voyages ordered by number.
func (r *GormVoyageRepository) GetAll(ctx context.Context) ([]voyage.Voyage, error) {
	var dtos []VoyageDTO
	err := r.db.WithContext(ctx).
		Preload("Movements", func(db *gorm.DB) *gorm.DB {
			return db.Order("movement_index")
		}).
		Order("number").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	voyages := make([]voyage.Voyage, 0, len(dtos))
	for _, dto := range dtos {
		voy, voyErr := toDomain(dto)
		if voyErr != nil {
			return nil, voyErr
		}
		voyages = append(voyages, voy)
	}

	return voyages, nil
}
