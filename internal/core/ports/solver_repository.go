package ports

import (
	"context"

	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/core/domain/model/solver"
)

// SolverRepository defines the persistence contract for the solver roster.
// The roster is fixed at startup; only the held orders of a solver change.
type SolverRepository interface {
	// Get retrieves one solver.
	Get(ctx context.Context, id kernel.SolverID) (*solver.Solver, error)

	// GetPool retrieves the whole roster as a Pool ordered by solver id.
	GetPool(ctx context.Context) (*solver.Pool, error)

	// UpdatePool persists the held orders of every solver in pool.
	UpdatePool(ctx context.Context, pool *solver.Pool) error
}
