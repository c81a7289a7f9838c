package solverrepo

import (
	"context"
	"slices"

	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/core/domain/model/solver"
	"solverdesk/internal/pkg/errs"
)

type tableSource interface {
	SolverTable(write bool) (*Table, error)
}

// MemorySolverRepository implements SolverRepository over a Table.
type MemorySolverRepository struct {
	source tableSource
}

// NewMemorySolverRepository creates a repository bound to source.
func NewMemorySolverRepository(source tableSource) *MemorySolverRepository {
	return &MemorySolverRepository{source: source}
}

// Get retrieves one solver by id.
func (r *MemorySolverRepository) Get(ctx context.Context, id kernel.SolverID) (*solver.Solver, error) {
	t, err := r.table(ctx, false)
	if err != nil {
		return nil, err
	}

	i, ok := t.index(id)
	if !ok {
		return nil, errs.NewObjectNotFoundError("solver", id.String())
	}

	return toDomain(t.rows[i])
}

// GetPool retrieves the whole roster.
func (r *MemorySolverRepository) GetPool(ctx context.Context) (*solver.Pool, error) {
	t, err := r.table(ctx, false)
	if err != nil {
		return nil, err
	}

	solvers := make([]*solver.Solver, 0, len(t.rows))
	for _, dto := range t.rows {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		solvers = append(solvers, s)
	}

	return solver.NewPool(solvers)
}

// UpdatePool saves every solver of pool. The roster itself never changes, so
// an unknown solver is an error.
func (r *MemorySolverRepository) UpdatePool(ctx context.Context, pool *solver.Pool) error {
	t, err := r.table(ctx, true)
	if err != nil {
		return err
	}

	for _, s := range pool.Solvers() {
		if err = s.Validate(); err != nil {
			return err
		}
		i, ok := t.index(s.ID())
		if !ok {
			return errs.NewObjectNotFoundError("solver", s.ID().String())
		}
		t.rows[i] = fromDomain(s)
	}

	return nil
}

func (r *MemorySolverRepository) table(ctx context.Context, write bool) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.source.SolverTable(write)
}

func (t *Table) index(id kernel.SolverID) (int, bool) {
	return slices.BinarySearchFunc(t.rows, id.Int(), func(row SolverDTO, target int) int {
		return row.ID - target
	})
}
