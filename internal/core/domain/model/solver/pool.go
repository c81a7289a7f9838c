package solver

import (
	"cmp"
	"fmt"
	"slices"

	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/pkg/errs"
)

// ErrDuplicateSolverID is returned when two solvers in a pool share an id.
var ErrDuplicateSolverID = errs.NewValueIsInvalidError("solver id is duplicated")

// Pool is the fixed set of solvers, ordered by ascending id. The order is the
// tie-break for selection, so the same command sequence always produces the
// same assignments.
type Pool struct {
	solvers []*Solver
}

// NewPool sorts solvers by id and rejects invalid or duplicate entries.
// The pool keeps the given pointers; changes made through the pool are visible
// on the solvers.
func NewPool(solvers []*Solver) (*Pool, error) {
	sorted := make([]*Solver, 0, len(solvers))
	for _, s := range solvers {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		sorted = append(sorted, s)
	}

	slices.SortFunc(sorted, func(a, b *Solver) int {
		return cmp.Compare(a.ID(), b.ID())
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].ID() == sorted[i-1].ID() {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSolverID, sorted[i].ID())
		}
	}

	return &Pool{solvers: sorted}, nil
}

// Solvers returns the solvers in id order.
func (p *Pool) Solvers() []*Solver {
	out := make([]*Solver, len(p.solvers))
	copy(out, p.solvers)
	return out
}

// Get returns the solver with the given id.
func (p *Pool) Get(id kernel.SolverID) (*Solver, error) {
	i, found := slices.BinarySearchFunc(p.solvers, id, func(s *Solver, target kernel.SolverID) int {
		return cmp.Compare(s.ID(), target)
	})
	if !found {
		return nil, errs.NewObjectNotFoundError("solver", id.String())
	}
	return p.solvers[i], nil
}

// HasFreeCapacity reports whether the solver can take another order.
func (p *Pool) HasFreeCapacity(id kernel.SolverID) (bool, error) {
	s, err := p.Get(id)
	if err != nil {
		return false, err
	}
	return s.HasFreeCapacity(), nil
}

// FirstAvailable returns the lowest-id solver with a free slot.
func (p *Pool) FirstAvailable() (kernel.SolverID, bool) {
	for _, s := range p.solvers {
		if s.HasFreeCapacity() {
			return s.ID(), true
		}
	}
	return 0, false
}

// Reserve gives orderID a slot on the solver. It fails when the solver is
// unknown, full, or already holds the order.
func (p *Pool) Reserve(id kernel.SolverID, orderID kernel.UUID) error {
	s, err := p.Get(id)
	if err != nil {
		return err
	}
	return s.Take(orderID)
}

// Release frees the slot orderID holds on the solver.
func (p *Pool) Release(id kernel.SolverID, orderID kernel.UUID) error {
	s, err := p.Get(id)
	if err != nil {
		return err
	}
	return s.Release(orderID)
}

// HolderOf returns the solver holding orderID, if any.
func (p *Pool) HolderOf(orderID kernel.UUID) (*Solver, bool) {
	for _, s := range p.solvers {
		if s.Holds(orderID) {
			return s, true
		}
	}
	return nil, false
}

// Capacity returns the sum of all solver capacities.
func (p *Pool) Capacity() int {
	total := 0
	for _, s := range p.solvers {
		total += s.Capacity()
	}
	return total
}

// FreeSlots returns the number of unoccupied slots across the pool.
func (p *Pool) FreeSlots() int {
	total := 0
	for _, s := range p.solvers {
		total += s.FreeSlots()
	}
	return total
}
