// Package ports defines repository interfaces for the cargo tracking domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
)

// CargoRepository defines the persistence contract for cargo aggregates.
// After any mutating operation the full aggregate (route specification,
// itinerary, delivery) is saved together; loading and storing a cargo is
// effectively atomic per tracking identity through the unit of work.
type CargoRepository interface {
	// Add persists a newly booked cargo aggregate.
	Add(ctx context.Context, aggregate *cargo.Cargo) error

	// Update persists changes to an existing cargo aggregate, replacing
	// its itinerary legs and delivery snapshot wholesale.
	Update(ctx context.Context, aggregate *cargo.Cargo) error

	// Get retrieves a cargo by its tracking identity.
	// Returns errs.ObjectNotFoundError when no such cargo exists.
	Get(ctx context.Context, trackingID kernel.TrackingID) (*cargo.Cargo, error)

	// GetAll retrieves every booked cargo, for booking overviews.
	GetAll(ctx context.Context) ([]*cargo.Cargo, error)
}
