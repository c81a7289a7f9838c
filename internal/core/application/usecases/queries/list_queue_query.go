package queries

import (
	"errors"

	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/pkg/guard"
)

var ErrListQueueQueryIsNotConstructed = errors.New(
	"ListQueueQuery must be created via NewListQueueQuery constructor",
)

// ListQueueQuery retrieves the paid orders waiting for a solver, front first.
type ListQueueQuery struct {
	guard guard.ConstructorGuard
}

func NewListQueueQuery() ListQueueQuery {
	return ListQueueQuery{guard: guard.NewConstructorGuard()}
}

func (q ListQueueQuery) Validate() error {
	return q.guard.Validate(ErrListQueueQueryIsNotConstructed)
}

// QueueEntry is one waiting order. Position starts at 1 for the front.
type QueueEntry struct {
	Position    int
	OrderID     kernel.UUID
	Number      int64
	StudentName string
	Subject     string
}
