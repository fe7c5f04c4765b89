// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"cargotracker/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CargoRepoFactory provides access to the cargo repository within a transaction.
	CargoRepoFactory interface {
		CargoRepository() ports.CargoRepository
	}

	// HandlingEventRepoFactory provides access to the handling event
	// repository within a transaction.
	HandlingEventRepoFactory interface {
		HandlingEventRepository() ports.HandlingEventRepository
	}

	// CargoUoW manages transactions for cargo-only operations.
	CargoUoW interface {
		TxManager
		CargoRepoFactory
	}

	// CargoUoWFactory creates new cargo unit of work instances.
	CargoUoWFactory interface {
		Create() CargoUoW
	}

	// UoW manages transactions spanning the cargo aggregate and its
	// handling event log. Used by commands that must store the cargo and
	// consult or grow the history atomically.
	UoW interface {
		TxManager
		CargoRepoFactory
		HandlingEventRepoFactory
	}

	// UoWFactory creates new unit of work instances for cargo+history operations.
	UoWFactory interface {
		Create() UoW
	}
)
