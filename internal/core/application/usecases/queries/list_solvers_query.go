package queries

import (
	"errors"

	"solverdesk/internal/pkg/guard"
)

var ErrListSolversQueryIsNotConstructed = errors.New(
	"ListSolversQuery must be created via NewListSolversQuery constructor",
)

// ListSolversQuery retrieves the roster with current loads, in solver id order.
type ListSolversQuery struct {
	guard guard.ConstructorGuard
}

func NewListSolversQuery() ListSolversQuery {
	return ListSolversQuery{guard: guard.NewConstructorGuard()}
}

func (q ListSolversQuery) Validate() error {
	return q.guard.Validate(ErrListSolversQueryIsNotConstructed)
}
