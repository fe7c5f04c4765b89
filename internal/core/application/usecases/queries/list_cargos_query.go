package queries

import (
	"errors"
	"time"

	"cargotracker/internal/pkg/guard"
)

var ErrListCargosQueryIsNotConstructed = errors.New(
	"ListCargosQuery must be created via NewListCargosQuery constructor",
)

// ListCargosQuery retrieves the booking overview of all registered cargos.
// Returns one summary row per cargo for the booking list view and the
// periodic delivery inspection job.
//
// Example:
//
//	query := NewListCargosQuery()
//	handler := NewListCargosQueryHandler(db)
//
//	cargos, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list cargos: %w", err)
//	}
//	fmt.Printf("Found %d registered cargos\n", len(cargos))
type ListCargosQuery struct {
	guard guard.ConstructorGuard
}

// NewListCargosQuery creates a query to retrieve all cargo summaries.
// This is a parameterless query.
func NewListCargosQuery() ListCargosQuery {
	return ListCargosQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListCargosQueryIsNotConstructed if validation fails.
func (q ListCargosQuery) Validate() error {
	return q.guard.Validate(ErrListCargosQueryIsNotConstructed)
}

// ListCargosQueryResponse is one row of the booking overview.
type ListCargosQueryResponse struct {
	TrackingID      string
	Origin          string
	Destination     string
	ArrivalDeadline time.Time
	TransportStatus string
	RoutingStatus   string
	Misdirected     bool
}
