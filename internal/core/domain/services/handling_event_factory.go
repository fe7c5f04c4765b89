package services

import (
	"context"
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/core/ports"
)

// HandlingEventFactory turns raw handling reports into validated handling
// events. A report references cargo, location and voyage by opaque codes;
// the factory resolves them and rejects reports that reference unknown
// objects or omit a required voyage.
//
// Example:
//
//	factory := services.NewHandlingEventFactory(locationRepo, voyageRepo)
//	event, err := factory.CreateHandlingEvent(ctx, trackingID, handling.Load,
//	    unLocode, &voyageNumber, completionTime)
//	if err != nil {
//	    // unknown location/voyage or invalid type/voyage combination
//	}
type HandlingEventFactory struct {
	locationRepository ports.LocationRepository
	voyageRepository   ports.VoyageRepository
}

// NewHandlingEventFactory creates a factory resolving locations and voyages
// through the given repositories.
func NewHandlingEventFactory(
	locationRepository ports.LocationRepository,
	voyageRepository ports.VoyageRepository,
) HandlingEventFactory {
	return HandlingEventFactory{
		locationRepository: locationRepository,
		voyageRepository:   voyageRepository,
	}
}

// CreateHandlingEvent validates a raw handling report and constructs the
// corresponding event. The voyage number is required for LOAD and UNLOAD
// reports and must be nil for the other types; the registration time is
// stamped here, at the moment the fact enters the system.
//
// Cargo existence is checked by the caller against its transactional
// repository, so the event and the re-derived cargo commit together.
func (f HandlingEventFactory) CreateHandlingEvent(
	ctx context.Context,
	trackingID kernel.TrackingID,
	eventType handling.EventType,
	unLocode kernel.UnLocode,
	voyageNumber *voyage.Number,
	completionTime time.Time,
) (handling.Event, error) {
	loc, err := f.locationRepository.Get(ctx, unLocode)
	if err != nil {
		return handling.Event{}, err
	}

	var voy *voyage.Voyage
	if voyageNumber != nil {
		found, voyageErr := f.voyageRepository.Get(ctx, *voyageNumber)
		if voyageErr != nil {
			return handling.Event{}, voyageErr
		}
		voy = &found
	}

	return handling.NewEvent(trackingID, eventType, loc, voy, completionTime, time.Now())
}
