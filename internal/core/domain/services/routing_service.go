package services

import (
	"context"

	"cargotracker/internal/core/domain/model/cargo"
)

// RoutingService supplies candidate itineraries for a route specification.
// Implementations live outside the core (route optimization is not a core
// concern); returning zero candidates is a valid answer.
type RoutingService interface {
	// FetchRoutesForSpecification returns zero or more itineraries that
	// could satisfy the given route specification.
	FetchRoutesForSpecification(
		ctx context.Context,
		routeSpecification cargo.RouteSpecification,
	) ([]cargo.Itinerary, error)
}
