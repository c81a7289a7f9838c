package queries

import (
	"errors"

	"solverdesk/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves every order on the desk, newest submission first.
// Cancelled orders are gone and never listed.
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}
