// Package eventrepo provides data transfer objects and mapping functions
// for the append-only handling event log. Events are facts: rows are only
// ever inserted, never updated or deleted.
package eventrepo

import (
	"context"
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/core/ports"
)

// HandlingEventDTO represents the database structure for persisting
// handling events. The voyage is stored by number and resolved back
// through the voyage repository on load.
type HandlingEventDTO struct {
	ID               uint   `gorm:"primaryKey;autoIncrement"`
	TrackingID       string `gorm:"index"`
	EventType        int
	Location         string
	LocationName     string
	VoyageNumber     *string
	CompletionTime   time.Time
	RegistrationTime time.Time
}

// TableName specifies the database table name for handling events.
// Overrides GORM's default naming convention to use "handling_events".
func (HandlingEventDTO) TableName() string {
	return "handling_events"
}

// fromDomain converts a handling event to its database representation.
func fromDomain(event handling.Event) HandlingEventDTO {
	var voyageNumber *string
	if voy := event.Voyage(); voy != nil {
		number := voy.Number().String()
		voyageNumber = &number
	}

	return HandlingEventDTO{
		TrackingID:       event.TrackingID().String(),
		EventType:        int(event.Type()),
		Location:         event.Location().UnLocode().String(),
		LocationName:     event.Location().Name(),
		VoyageNumber:     voyageNumber,
		CompletionTime:   event.CompletionTime(),
		RegistrationTime: event.RegistrationTime(),
	}
}

// toDomain converts a database DTO to a handling event, resolving the
// voyage reference through the given repository.
func toDomain(ctx context.Context, dto HandlingEventDTO, voyages ports.VoyageRepository) (handling.Event, error) {
	trackingID, err := kernel.TrackingIDFromString(dto.TrackingID)
	if err != nil {
		return handling.Event{}, err
	}

	unLocode, err := kernel.NewUnLocode(dto.Location)
	if err != nil {
		return handling.Event{}, err
	}

	loc, err := location.NewLocation(unLocode, dto.LocationName)
	if err != nil {
		return handling.Event{}, err
	}

	var voy *voyage.Voyage
	if dto.VoyageNumber != nil {
		number, numberErr := voyage.NewNumber(*dto.VoyageNumber)
		if numberErr != nil {
			return handling.Event{}, numberErr
		}

		found, voyageErr := voyages.Get(ctx, number)
		if voyageErr != nil {
			return handling.Event{}, voyageErr
		}
		voy = &found
	}

	return handling.NewEvent(
		trackingID,
		handling.EventType(dto.EventType),
		loc,
		voy,
		dto.CompletionTime,
		dto.RegistrationTime,
	)
}
