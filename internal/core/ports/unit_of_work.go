package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request or
// command. This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Recording a handling event and re-deriving the cargo's delivery happen
// inside one unit of work, so the aggregate is always stored from a
// causally consistent (route, itinerary, history) triple.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// CargoRepository returns a CargoRepository bound to the current transaction.
	CargoRepository() CargoRepository

	// HandlingEventRepository returns a HandlingEventRepository bound to the
	// current transaction.
	HandlingEventRepository() HandlingEventRepository
}
