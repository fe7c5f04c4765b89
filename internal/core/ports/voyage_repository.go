package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/voyage"
)

// VoyageRepository resolves voyage numbers to voyages.
type VoyageRepository interface {
	// Get resolves a voyage number.
	// Returns errs.ObjectNotFoundError when no such voyage exists.
	Get(ctx context.Context, number voyage.Number) (voyage.Voyage, error)

	// GetAll retrieves all known voyages.
	GetAll(ctx context.Context) ([]voyage.Voyage, error)
}
