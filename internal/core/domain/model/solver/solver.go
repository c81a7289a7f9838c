package solver

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/pkg/errs"
	"solverdesk/internal/pkg/guard"
)

// DefaultCapacity is the number of orders a solver may hold at once unless
// the roster says otherwise.
const DefaultCapacity = 5

// Domain errors for solver operations.
var (
	// ErrNameIsRequired is returned when a solver has no name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrSolverIsNotConstructed is returned when using an improperly initialized Solver.
	ErrSolverIsNotConstructed = errors.New("Solver must be created via NewSolver constructor")
	// ErrCapacityExceeded is returned by Take when every slot is occupied.
	ErrCapacityExceeded = errors.New("solver capacity exceeded")
	// ErrOrderAlreadyHeld is returned by Take when the order already occupies a slot.
	ErrOrderAlreadyHeld = errors.New("order is already held by the solver")
	// ErrOrderNotHeld is returned by Release when the order does not occupy a slot.
	ErrOrderNotHeld = errors.New("order is not held by the solver")
)

// Solver is a worker with a fixed number of concurrent order slots.
//
// Business rules:
//   - Valid SolverID, non-empty name, capacity greater than 0
//   - Held orders are kept in assignment order, oldest first
//   - The number of held orders never exceeds capacity
//   - An order occupies at most one slot
type Solver struct {
	id       kernel.SolverID
	name     string
	capacity int
	assigned []kernel.UUID
	guard    guard.ConstructorGuard
}

// NewSolver creates an idle solver.
//
// Example:
//
//	s, err := solver.NewSolver(1, "Solver A", solver.DefaultCapacity)
func NewSolver(id kernel.SolverID, name string, capacity int) (*Solver, error) {
	s := &Solver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSolver rebuilds a solver together with the orders it holds.
func RestoreSolver(id kernel.SolverID, name string, capacity int, assigned []kernel.UUID) (*Solver, error) {
	s, err := NewSolver(id, name, capacity)
	if err != nil {
		return nil, err
	}

	if err = s.setAssigned(assigned); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the solver was created through its constructor.
func (s *Solver) Validate() error {
	if s == nil {
		return ErrSolverIsNotConstructed
	}
	return s.guard.Validate(ErrSolverIsNotConstructed)
}

// IsEqual compares solvers by id.
func (s *Solver) IsEqual(other *Solver) bool {
	if other == nil {
		return false
	}
	return s.id == other.id
}

// ID returns the solver id.
func (s *Solver) ID() kernel.SolverID {
	return s.id
}

// Name returns the display name.
func (s *Solver) Name() string {
	return s.name
}

// Capacity returns the maximum number of held orders.
func (s *Solver) Capacity() int {
	return s.capacity
}

// Load returns the number of held orders.
func (s *Solver) Load() int {
	return len(s.assigned)
}

// FreeSlots returns capacity minus load.
func (s *Solver) FreeSlots() int {
	return s.capacity - len(s.assigned)
}

// HasFreeCapacity reports whether another order can be taken.
func (s *Solver) HasFreeCapacity() bool {
	return len(s.assigned) < s.capacity
}

// Assigned returns a copy of the held order ids, oldest first.
func (s *Solver) Assigned() []kernel.UUID {
	out := make([]kernel.UUID, len(s.assigned))
	copy(out, s.assigned)
	return out
}

// Holds reports whether orderID occupies a slot.
func (s *Solver) Holds(orderID kernel.UUID) bool {
	return s.indexOf(orderID) >= 0
}

// Take reserves a slot for orderID.
func (s *Solver) Take(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if s.Holds(orderID) {
		return fmt.Errorf("%w: solver %s, order %s", ErrOrderAlreadyHeld, s.id, orderID)
	}
	if !s.HasFreeCapacity() {
		return fmt.Errorf("%w: solver %s holds %d of %d", ErrCapacityExceeded, s.id, len(s.assigned), s.capacity)
	}

	s.assigned = append(s.assigned, orderID)
	return nil
}

// Release frees the slot held by orderID.
func (s *Solver) Release(orderID kernel.UUID) error {
	i := s.indexOf(orderID)
	if i < 0 {
		return fmt.Errorf("%w: solver %s, order %s", ErrOrderNotHeld, s.id, orderID)
	}

	s.assigned = slices.Delete(s.assigned, i, i+1)
	return nil
}

func (s *Solver) indexOf(orderID kernel.UUID) int {
	return slices.IndexFunc(s.assigned, func(id kernel.UUID) bool {
		return id.IsEqual(orderID)
	})
}

func (s *Solver) setID(id kernel.SolverID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Solver) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	s.name = name
	return nil
}

func (s *Solver) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity is invalid", fmt.Errorf("%d is not greater than 0", capacity))
	}
	s.capacity = capacity
	return nil
}

func (s *Solver) setAssigned(assigned []kernel.UUID) error {
	s.assigned = make([]kernel.UUID, 0, len(assigned))
	for _, id := range assigned {
		if err := s.Take(id); err != nil {
			return err
		}
	}
	return nil
}
