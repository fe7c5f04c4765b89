package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
)

// HandlingEventRepository defines the persistence contract for the
// append-only handling event log. Events are only ever added; nothing
// updates or deletes them.
type HandlingEventRepository interface {
	// Add appends a handling event to the log.
	Add(ctx context.Context, event handling.Event) error

	// GetHandlingHistory assembles the full history recorded for one cargo.
	// An unknown tracking identity yields an empty history, not an error.
	GetHandlingHistory(ctx context.Context, trackingID kernel.TrackingID) (handling.History, error)
}
