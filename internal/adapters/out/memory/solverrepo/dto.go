// Package solverrepo provides the in-memory solver roster table.
package solverrepo

import (
	"slices"

	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/core/domain/model/solver"

	"github.com/google/uuid"
)

// SolverDTO is the stored row of a solver with the orders it holds, oldest first.
type SolverDTO struct {
	ID       int
	Name     string
	Capacity int
	Assigned []uuid.UUID
}

func fromDomain(s *solver.Solver) SolverDTO {
	held := s.Assigned()
	assigned := make([]uuid.UUID, 0, len(held))
	for _, id := range held {
		assigned = append(assigned, id.Bytes())
	}

	return SolverDTO{
		ID:       s.ID().Int(),
		Name:     s.Name(),
		Capacity: s.Capacity(),
		Assigned: assigned,
	}
}

func toDomain(dto SolverDTO) (*solver.Solver, error) {
	id, err := kernel.NewSolverID(dto.ID)
	if err != nil {
		return nil, err
	}

	assigned := make([]kernel.UUID, 0, len(dto.Assigned))
	for _, raw := range dto.Assigned {
		orderID, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return nil, idErr
		}
		assigned = append(assigned, orderID)
	}

	return solver.RestoreSolver(id, dto.Name, dto.Capacity, assigned)
}

func (dto SolverDTO) clone() SolverDTO {
	dto.Assigned = slices.Clone(dto.Assigned)
	return dto
}
