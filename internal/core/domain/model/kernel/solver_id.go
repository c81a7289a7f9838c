package kernel

import (
	"fmt"
	"strconv"

	"solverdesk/internal/pkg/errs"
)

// SolverID identifies a solver. Solvers are declared once at startup and are
// numbered from 1 in declaration order, so ascending SolverID is also the
// roster order used for deterministic tie-breaking.
type SolverID int

// NewSolverID validates that id is positive.
func NewSolverID(id int) (SolverID, error) {
	s := SolverID(id)
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return s, nil
}

// SolverIDFromString parses a decimal solver id.
func SolverIDFromString(s string) (SolverID, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("solver id", fmt.Errorf("%q is not a number", s))
	}
	return NewSolverID(n)
}

// Validate returns an error unless the id is positive.
func (s SolverID) Validate() error {
	if s <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("solver id", fmt.Errorf("%d is not greater than 0", int(s)))
	}
	return nil
}

// Int returns the id as a plain int.
func (s SolverID) Int() int {
	return int(s)
}

func (s SolverID) String() string {
	return strconv.Itoa(int(s))
}
