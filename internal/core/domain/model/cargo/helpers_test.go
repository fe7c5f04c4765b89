package cargo_test

import (
	"testing"
	"time"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"

	"github.com/stretchr/testify/require"
)

// day returns noon UTC on the given day of March 2026, matching the sample
// voyage schedules.
func day(d int) time.Time {
	return time.Date(2026, time.March, d, 12, 0, 0, 0, time.UTC)
}

func mustLeg(
	t *testing.T,
	voy voyage.Voyage,
	load, unload location.Location,
	loadTime, unloadTime time.Time,
) cargo.Leg {
	t.Helper()
	leg, err := cargo.NewLeg(voy, load, unload, loadTime, unloadTime)
	require.NoError(t, err)
	return leg
}

// hongkongToStockholm builds the canonical test itinerary over the sample
// voyages: Hongkong -V100-> Tokyo -V200-> New York -> Chicago -> Stockholm.
func hongkongToStockholm(t *testing.T) cargo.Itinerary {
	t.Helper()
	itinerary, err := cargo.NewItinerary([]cargo.Leg{
		mustLeg(t, voyage.V100, location.Hongkong, location.Tokyo, day(3), day(5)),
		mustLeg(t, voyage.V200, location.Tokyo, location.NewYork, day(8), day(11)),
		mustLeg(t, voyage.V200, location.NewYork, location.Chicago, day(12), day(14)),
		mustLeg(t, voyage.V200, location.Chicago, location.Stockholm, day(14), day(16)),
	})
	require.NoError(t, err)
	return itinerary
}

// hongkongToStockholmSpec builds the matching delivery contract with a
// deadline the itinerary satisfies.
func hongkongToStockholmSpec(t *testing.T) cargo.RouteSpecification {
	t.Helper()
	rs, err := cargo.NewRouteSpecification(location.Hongkong, location.Stockholm, day(20))
	require.NoError(t, err)
	return rs
}

func portEvent(
	t *testing.T,
	trackingID kernel.TrackingID,
	eventType handling.EventType,
	loc location.Location,
	completionTime time.Time,
) handling.Event {
	t.Helper()
	event, err := handling.NewEvent(trackingID, eventType, loc, nil, completionTime, completionTime.Add(time.Hour))
	require.NoError(t, err)
	return event
}

func voyageEvent(
	t *testing.T,
	trackingID kernel.TrackingID,
	eventType handling.EventType,
	loc location.Location,
	voy voyage.Voyage,
	completionTime time.Time,
) handling.Event {
	t.Helper()
	event, err := handling.NewEvent(trackingID, eventType, loc, &voy, completionTime, completionTime.Add(time.Hour))
	require.NoError(t, err)
	return event
}

func mustHistory(t *testing.T, events ...handling.Event) handling.History {
	t.Helper()
	history, err := handling.NewHistory(events)
	require.NoError(t, err)
	return history
}
