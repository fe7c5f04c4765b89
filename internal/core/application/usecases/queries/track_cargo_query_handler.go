package queries

import (
	"context"
	"database/sql"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackCargoQueryHandler reads the tracking view from the database.
// The view combines the delivery snapshot stored on the cargo row with the
// handling event log, ordered by completion time the way the public
// tracking page presents it.
//
// Example:
//
//	handler := NewTrackCargoQueryHandler(db)
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    log.Printf("Unknown cargo %s", query.TrackingID())
//	}
type TrackCargoQueryHandler struct {
	db *gorm.DB
}

// NewTrackCargoQueryHandler creates a handler for cargo tracking queries.
// Requires a GORM database connection for query execution.
func NewTrackCargoQueryHandler(db *gorm.DB) TrackCargoQueryHandler {
	return TrackCargoQueryHandler{db: db}
}

// Handle executes the tracking query.
// Returns an errs.ErrObjectNotFound error when no cargo carries the
// tracking ID. Events are returned oldest first with a completion time tie
// broken by registration order.
func (h TrackCargoQueryHandler) Handle(
	ctx context.Context,
	query TrackCargoQuery,
) (TrackCargoQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackCargoQueryResponse{}, err
	}

	response, err := h.readCargoRow(ctx, query)
	if err != nil {
		return TrackCargoQueryResponse{}, err
	}

	events, err := h.readEventLog(ctx, query)
	if err != nil {
		return TrackCargoQueryResponse{}, err
	}
	response.HandlingEvents = events

	return response, nil
}

func (h TrackCargoQueryHandler) readCargoRow(
	ctx context.Context,
	query TrackCargoQuery,
) (TrackCargoQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_id,
			origin,
			destination,
			arrival_deadline,
			delivery_transport_status,
			delivery_routing_status,
			delivery_misdirected,
			delivery_unloaded_at_destination,
			delivery_last_known_location,
			delivery_current_voyage_number,
			delivery_eta,
			delivery_next_event_type,
			delivery_next_location,
			delivery_next_voyage_number
		FROM cargos
		WHERE tracking_id = ?
	`, query.TrackingID().String()).Row()

	var response TrackCargoQueryResponse
	var transportStatus, routingStatus int
	var lastKnownLocation, currentVoyageNumber sql.NullString
	var eta sql.NullTime
	var nextEventType sql.NullInt64
	var nextLocation, nextVoyageNumber sql.NullString

	err := row.Scan(
		&response.TrackingID,
		&response.Origin,
		&response.Destination,
		&response.ArrivalDeadline,
		&transportStatus,
		&routingStatus,
		&response.Misdirected,
		&response.UnloadedAtDestination,
		&lastKnownLocation,
		&currentVoyageNumber,
		&eta,
		&nextEventType,
		&nextLocation,
		&nextVoyageNumber,
	)
	if err == sql.ErrNoRows {
		return TrackCargoQueryResponse{}, errs.NewObjectNotFoundError(
			"trackingId", query.TrackingID().String())
	}
	if err != nil {
		return TrackCargoQueryResponse{}, err
	}

	response.TransportStatus = cargo.TransportStatus(transportStatus).String()
	response.RoutingStatus = cargo.RoutingStatus(routingStatus).String()

	if lastKnownLocation.Valid {
		response.LastKnownLocation = &lastKnownLocation.String
	}
	if currentVoyageNumber.Valid {
		response.CurrentVoyageNumber = &currentVoyageNumber.String
	}
	if eta.Valid {
		etaTime := eta.Time
		response.ETA = &etaTime
	}

	if nextEventType.Valid && nextEventType.Int64 != int64(handling.Unknown) {
		activity := TrackCargoActivityResponse{
			EventType: handling.EventType(nextEventType.Int64).String(),
			Location:  nextLocation.String,
		}
		if nextVoyageNumber.Valid {
			activity.VoyageNumber = &nextVoyageNumber.String
		}
		response.NextExpectedActivity = &activity
	}

	return response, nil
}

func (h TrackCargoQueryHandler) readEventLog(
	ctx context.Context,
	query TrackCargoQuery,
) ([]TrackCargoEventResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			event_type,
			location,
			voyage_number,
			completion_time
		FROM handling_events
		WHERE tracking_id = ?
		ORDER BY completion_time, registration_time, id
	`, query.TrackingID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]TrackCargoEventResponse, 0)
	for rows.Next() {
		var eventType int
		var voyageNumber sql.NullString
		var event TrackCargoEventResponse

		err = rows.Scan(
			&eventType,
			&event.Location,
			&voyageNumber,
			&event.CompletionTime,
		)
		if err != nil {
			return nil, err
		}

		event.EventType = handling.EventType(eventType).String()
		if voyageNumber.Valid {
			event.VoyageNumber = &voyageNumber.String
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
