package solverrepo

import (
	"solverdesk/internal/core/domain/model/solver"
)

// Table holds the roster rows in ascending id order.
type Table struct {
	rows []SolverDTO
}

// NewTable builds the roster from solvers. Ids must be unique.
func NewTable(solvers []*solver.Solver) (*Table, error) {
	pool, err := solver.NewPool(solvers)
	if err != nil {
		return nil, err
	}

	t := &Table{rows: make([]SolverDTO, 0, len(solvers))}
	for _, s := range pool.Solvers() {
		t.rows = append(t.rows, fromDomain(s))
	}
	return t, nil
}

// Clone returns an independent copy of the rows.
func (t *Table) Clone() *Table {
	rows := make([]SolverDTO, 0, len(t.rows))
	for _, row := range t.rows {
		rows = append(rows, row.clone())
	}
	return &Table{rows: rows}
}

func (t *Table) Len() int {
	return len(t.rows)
}
