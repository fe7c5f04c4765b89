// Package queries contains read-only operations of the CQRS architecture.
// Query handlers bypass the domain model and read the persisted snapshots
// and event log directly, returning plain response structures for the
// public tracking and booking views.
package queries

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/guard"
)

var ErrTrackCargoQueryIsNotConstructed = errors.New(
	"TrackCargoQuery must be created via NewTrackCargoQuery constructor",
)

// TrackCargoQuery retrieves the public tracking view of one cargo: the
// stored delivery snapshot plus the chronological handling event log.
//
// Example:
//
//	query, err := NewTrackCargoQuery(trackingID)
//	if err != nil {
//	    return fmt.Errorf("invalid tracking request: %w", err)
//	}
//
//	handler := NewTrackCargoQueryHandler(db)
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to track cargo: %w", err)
//	}
//	fmt.Printf("Cargo %s is %s\n", view.TrackingID, view.TransportStatus)
type TrackCargoQuery struct { //nolint:recvcheck //using for validation
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

// NewTrackCargoQuery creates a query for one cargo's tracking view.
// Validates the tracking ID.
func NewTrackCargoQuery(trackingID kernel.TrackingID) (TrackCargoQuery, error) {
	trackQuery := TrackCargoQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := trackQuery.setTrackingID(trackingID); err != nil {
		return TrackCargoQuery{}, err
	}

	return trackQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackCargoQueryIsNotConstructed if validation fails.
func (q TrackCargoQuery) Validate() error {
	return q.guard.Validate(ErrTrackCargoQueryIsNotConstructed)
}

// TrackingID returns the identity of the cargo being tracked.
func (q TrackCargoQuery) TrackingID() kernel.TrackingID {
	return q.trackingID
}

func (q *TrackCargoQuery) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	q.trackingID = trackingID
	return nil
}

// TrackCargoQueryResponse is the public tracking view of one cargo.
// Statuses are rendered in their uppercase wire form; optional fields are
// nil when the underlying snapshot has no value for them.
type TrackCargoQueryResponse struct {
	TrackingID            string
	Origin                string
	Destination           string
	ArrivalDeadline       time.Time
	TransportStatus       string
	RoutingStatus         string
	Misdirected           bool
	UnloadedAtDestination bool
	LastKnownLocation     *string
	CurrentVoyageNumber   *string
	ETA                   *time.Time
	NextExpectedActivity  *TrackCargoActivityResponse
	HandlingEvents        []TrackCargoEventResponse
}

// TrackCargoActivityResponse describes the next expected handling activity.
type TrackCargoActivityResponse struct {
	EventType    string
	Location     string
	VoyageNumber *string
}

// TrackCargoEventResponse is one entry of the cargo's handling event log.
type TrackCargoEventResponse struct {
	EventType      string
	Location       string
	VoyageNumber   *string
	CompletionTime time.Time
}
