package queries

import (
	"errors"

	"solverdesk/internal/core/domain/model/order"
	"solverdesk/internal/pkg/guard"
)

var ErrGetBoardSummaryQueryIsNotConstructed = errors.New(
	"GetBoardSummaryQuery must be created via NewGetBoardSummaryQuery constructor",
)

// GetBoardSummaryQuery retrieves the desk totals: orders per status, the
// paid-but-unassigned backlog and slot usage.
type GetBoardSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetBoardSummaryQuery() GetBoardSummaryQuery {
	return GetBoardSummaryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetBoardSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetBoardSummaryQueryIsNotConstructed)
}

// BoardSummary is the desk overview. StatusCounts has an entry for every
// status that can be stored, zero included.
type BoardSummary struct {
	TotalOrders  int
	StatusCounts map[order.Status]int
	QueueLength  int
	TotalSlots   int
	FreeSlots    int
	Solvers      []SolverView
}
