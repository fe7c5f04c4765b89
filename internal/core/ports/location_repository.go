package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
)

// LocationRepository resolves opaque UN location codes to locations.
// An unknown code is an expected condition and surfaces as
// errs.ObjectNotFoundError, which callers propagate to whoever supplied
// the code.
type LocationRepository interface {
	// Get resolves a UN location code.
	Get(ctx context.Context, unLocode kernel.UnLocode) (location.Location, error)

	// GetAll retrieves all known locations.
	GetAll(ctx context.Context) ([]location.Location, error)
}
