package eventrepo

import (
	"context"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/ports"

	"gorm.io/gorm"
)

// GormHandlingEventRepository implements HandlingEventRepository using GORM.
// Voyage references are resolved through the voyage repository so loaded
// events carry the full schedule the derivation logic matches against.
type GormHandlingEventRepository struct {
	db               *gorm.DB
	voyageRepository ports.VoyageRepository
}

// NewGormHandlingEventRepository creates a new GORM handling event repository.
func NewGormHandlingEventRepository(
	db *gorm.DB,
	voyageRepository ports.VoyageRepository,
) *GormHandlingEventRepository {
	return &GormHandlingEventRepository{
		db:               db,
		voyageRepository: voyageRepository,
	}
}

// Add appends a handling event to the log.
func (r *GormHandlingEventRepository) Add(ctx context.Context, event handling.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetHandlingHistory assembles the full history recorded for one cargo.
// An unknown tracking identity yields an empty history, not an error.
func (r *GormHandlingEventRepository) GetHandlingHistory(
	ctx context.Context,
	trackingID kernel.TrackingID,
) (handling.History, error) {
	if err := trackingID.Validate(); err != nil {
		return handling.History{}, err
	}

	var dtos []HandlingEventDTO
	err := r.db.WithContext(ctx).
		Order("completion_time, registration_time, id").
		Find(&dtos, "tracking_id = ?", trackingID.String()).Error
	if err != nil {
		return handling.History{}, err
	}

	if len(dtos) == 0 {
		return handling.EmptyHistory(), nil
	}

	events := make([]handling.Event, 0, len(dtos))
	for _, dto := range dtos {
		event, eventErr := toDomain(ctx, dto, r.voyageRepository)
		if eventErr != nil {
			return handling.History{}, eventErr
		}
		events = append(events, event)
	}

	return handling.NewHistory(events)
}
