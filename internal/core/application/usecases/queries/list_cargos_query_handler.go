package queries

import (
	"context"

	"cargotracker/internal/core/domain/model/cargo"

	"gorm.io/gorm"
)

// ListCargosQueryHandler reads the booking overview from the database.
// Returns the stored delivery snapshot fields only; no history replay
// happens on the read path.
//
// Example:
//
//	handler := NewListCargosQueryHandler(db)
//	cargos, err := handler.Handle(ctx, NewListCargosQuery())
//	if err != nil {
//	    log.Printf("Failed to list cargos: %v", err)
//	    return err
//	}
//
//	for _, c := range cargos {
//	    fmt.Printf("%s: %s -> %s (%s)\n",
//	        c.TrackingID, c.Origin, c.Destination, c.TransportStatus)
//	}
type ListCargosQueryHandler struct {
	db *gorm.DB
}

// NewListCargosQueryHandler creates a handler for the booking overview query.
// Requires a GORM database connection for query execution.
func NewListCargosQueryHandler(db *gorm.DB) ListCargosQueryHandler {
	return ListCargosQueryHandler{db: db}
}

// Handle executes the query to retrieve all cargo summaries.
// Results are sorted by tracking ID for consistent output.
func (h ListCargosQueryHandler) Handle(
	ctx context.Context,
	query ListCargosQuery,
) ([]ListCargosQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_id,
			origin,
			destination,
			arrival_deadline,
			delivery_transport_status,
			delivery_routing_status,
			delivery_misdirected
		FROM cargos
		ORDER BY tracking_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cargos := make([]ListCargosQueryResponse, 0)
	for rows.Next() {
		var cargoResp ListCargosQueryResponse
		var transportStatus, routingStatus int

		err = rows.Scan(
			&cargoResp.TrackingID,
			&cargoResp.Origin,
			&cargoResp.Destination,
			&cargoResp.ArrivalDeadline,
			&transportStatus,
			&routingStatus,
			&cargoResp.Misdirected,
		)
		if err != nil {
			return nil, err
		}

		cargoResp.TransportStatus = cargo.TransportStatus(transportStatus).String()
		cargoResp.RoutingStatus = cargo.RoutingStatus(routingStatus).String()
		cargos = append(cargos, cargoResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cargos, nil
}
