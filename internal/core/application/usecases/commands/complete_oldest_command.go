package commands

import (
	"errors"

	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/pkg/guard"
)

var ErrCompleteOldestCommandIsNotConstructed = errors.New(
	"CompleteOldestCommand must be created via NewCompleteOldestCommand constructor",
)

// CompleteOldestCommand asks a solver to hand in the oldest order it is
// working on, the desk's "complete oldest task" button.
type CompleteOldestCommand struct {
	solverID kernel.SolverID

	guard guard.ConstructorGuard
}

func NewCompleteOldestCommand(solverID kernel.SolverID) (CompleteOldestCommand, error) {
	if err := solverID.Validate(); err != nil {
		return CompleteOldestCommand{}, err
	}

	return CompleteOldestCommand{
		solverID: solverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteOldestCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOldestCommandIsNotConstructed)
}

func (c CompleteOldestCommand) SolverID() kernel.SolverID {
	return c.solverID
}
