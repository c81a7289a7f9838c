package ports

import (
	"context"

	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Cancelled orders are removed, so every stored order is in a live or
// Completed status.
type OrderRepository interface {
	// Add persists a new order aggregate.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Remove deletes an order. Returns errs.ErrObjectNotFound when it does not exist.
	Remove(ctx context.Context, id kernel.UUID) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetMany retrieves orders in the order of ids. A missing id is an
	// errs.ErrObjectNotFound error.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error)

	// GetAll retrieves every order, newest submission first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// NextNumber reserves the next submission number. Numbers are never
	// handed out twice, even when the surrounding unit of work rolls back.
	NextNumber(ctx context.Context) (int64, error)
}
