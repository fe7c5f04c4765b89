// Package routing supplies candidate itineraries by walking the published
// voyage schedules. It is a deliberately simple stand-in for an external
// route optimization service: only single-voyage routes are found, which is
// enough for the seeded schedules and keeps candidates explainable.
package routing

import (
	"context"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/core/ports"
)

// ScheduleRoutingService implements services.RoutingService by scanning
// every known voyage for a consecutive run of carrier movements from the
// specification's origin to its destination.
type ScheduleRoutingService struct {
	voyageRepository ports.VoyageRepository
}

// NewScheduleRoutingService creates a routing service over the given
// voyage repository.
func NewScheduleRoutingService(voyageRepository ports.VoyageRepository) *ScheduleRoutingService {
	return &ScheduleRoutingService{voyageRepository: voyageRepository}
}

// FetchRoutesForSpecification returns itineraries that satisfy the route
// specification, one leg per carrier movement. Voyages that reach the
// destination too late are filtered out; zero candidates is a valid answer.
func (s *ScheduleRoutingService) FetchRoutesForSpecification(
	ctx context.Context,
	routeSpecification cargo.RouteSpecification,
) ([]cargo.Itinerary, error) {
	if err := routeSpecification.Validate(); err != nil {
		return nil, err
	}

	voyages, err := s.voyageRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]cargo.Itinerary, 0)
	for _, voy := range voyages {
		itinerary, found, itineraryErr := s.findRoute(voy, routeSpecification)
		if itineraryErr != nil {
			return nil, itineraryErr
		}
		if !found {
			continue
		}

		if routeSpecification.IsSatisfiedBy(itinerary) {
			candidates = append(candidates, itinerary)
		}
	}

	return candidates, nil
}

// findRoute looks for a consecutive run of movements carrying the cargo
// from origin to destination on a single voyage.
func (s *ScheduleRoutingService) findRoute(
	voy voyage.Voyage,
	routeSpecification cargo.RouteSpecification,
) (cargo.Itinerary, bool, error) {
	movements := voy.Schedule().CarrierMovements()
	origin := routeSpecification.Origin().UnLocode()
	destination := routeSpecification.Destination().UnLocode()

	start := -1
	for i, movement := range movements {
		if movement.DepartureLocation().UnLocode().IsEqual(origin) {
			start = i
			break
		}
	}
	if start < 0 {
		return cargo.Itinerary{}, false, nil
	}

	legs := make([]cargo.Leg, 0, len(movements)-start)
	for i := start; i < len(movements); i++ {
		movement := movements[i]
		leg, err := cargo.NewLeg(
			voy,
			movement.DepartureLocation(),
			movement.ArrivalLocation(),
			movement.DepartureTime(),
			movement.ArrivalTime(),
		)
		if err != nil {
			return cargo.Itinerary{}, false, err
		}
		legs = append(legs, leg)

		if movement.ArrivalLocation().UnLocode().IsEqual(destination) {
			itinerary, itineraryErr := cargo.NewItinerary(legs)
			if itineraryErr != nil {
				return cargo.Itinerary{}, false, itineraryErr
			}
			return itinerary, true, nil
		}
	}

	return cargo.Itinerary{}, false, nil
}
