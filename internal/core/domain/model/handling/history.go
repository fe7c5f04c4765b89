package handling

import (
	"fmt"
	"sort"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
)

// History is the append-only, insertion-order-irrelevant collection of
// handling events for exactly one cargo. It grows monotonically and is the
// factual input of delivery derivation.
//
// History is a value: it is assembled from stored events on every
// derivation and never mutated in place. An empty history is valid and
// means the cargo has not been received yet.
type History struct {
	events []Event
}

// EmptyHistory returns a history with no events.
func EmptyHistory() History {
	return History{}
}

// NewHistory creates a history from the given events. Every event must be
// valid and all events must belong to the same cargo; mixing tracking
// identities is a caller error.
func NewHistory(events []Event) (History, error) {
	var trackingID kernel.TrackingID

	for i, event := range events {
		if err := event.Validate(); err != nil {
			return History{}, err
		}

		if i == 0 {
			trackingID = event.TrackingID()
			continue
		}
		if !event.TrackingID().IsEqual(trackingID) {
			return History{}, errs.NewValueIsInvalidErrorWithCause("events",
				fmt.Errorf("history mixes cargo %s with cargo %s", trackingID, event.TrackingID()))
		}
	}

	copied := make([]Event, len(events))
	copy(copied, events)

	return History{events: copied}, nil
}

// IsEmpty reports whether no events have been recorded.
func (h History) IsEmpty() bool {
	return len(h.events) == 0
}

// DistinctEventsByCompletionTime returns the events with duplicates removed,
// ordered by completion time ascending. Events registered twice for the same
// activity collapse into one.
func (h History) DistinctEventsByCompletionTime() []Event {
	distinct := make([]Event, 0, len(h.events))
	for _, candidate := range h.events {
		seen := false
		for _, kept := range distinct {
			if kept.IsEqual(candidate) {
				seen = true
				break
			}
		}
		if !seen {
			distinct = append(distinct, candidate)
		}
	}

	sort.SliceStable(distinct, func(i, j int) bool {
		return distinct[i].CompletionTime().Before(distinct[j].CompletionTime())
	})
	return distinct
}

// MostRecentlyCompletedEvent returns the event with the latest completion
// time, ties broken by the latest registration time. Returns nil for an
// empty history.
func (h History) MostRecentlyCompletedEvent() *Event {
	if h.IsEmpty() {
		return nil
	}

	last := h.events[0]
	for _, candidate := range h.events[1:] {
		if candidate.CompletionTime().After(last.CompletionTime()) {
			last = candidate
			continue
		}
		if candidate.CompletionTime().Equal(last.CompletionTime()) &&
			candidate.RegistrationTime().After(last.RegistrationTime()) {
			last = candidate
		}
	}
	return &last
}
