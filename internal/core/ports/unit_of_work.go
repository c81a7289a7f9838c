// Package ports defines repository interfaces for the solver desk domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
	// CreateReadOnly returns a unit of work for queries. It may run
	// concurrently with other read-only units but never with a writer,
	// and its repositories reject writes.
	CreateReadOnly() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control over every aggregate of the desk.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit applies every staged change atomically.
	// Returns error if no active transaction.
	Commit(ctx context.Context) error

	// Rollback discards every staged change.
	// Returns error if no active transaction.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// SolverRepository returns a SolverRepository bound to the current transaction.
	SolverRepository() SolverRepository

	// QueueRepository returns a QueueRepository bound to the current transaction.
	QueueRepository() QueueRepository
}
