package services

import (
	"fmt"

	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/core/domain/model/order"
	"solverdesk/internal/core/domain/model/queue"
	"solverdesk/internal/core/domain/model/solver"
	"solverdesk/internal/pkg/errs"
)

// Rule names reported by VerifyInvariants.
const (
	RuleSolverMatchesStatus = "solver is set exactly when assigned or in progress"
	RuleSolverHoldsOrder    = "order and solver agree on the assignment"
	RuleCapacityBound       = "capacity bound"
	RuleQueueMatchesStatus  = "queued exactly when paid and unassigned"
	RuleSinglePlacement     = "order is held or queued at most once"
)

// VerifyInvariants checks the whole desk state for consistency and returns the
// first violation found as an *errs.InvariantViolationError. A violation is a
// programming defect; callers are expected to panic on it.
func VerifyInvariants(orders []*order.Order, pool *solver.Pool, q *queue.WaitQueue) error {
	byID := make(map[kernel.UUID]*order.Order, len(orders))
	for _, o := range orders {
		byID[o.ID()] = o
	}

	placed := make(map[kernel.UUID]string)

	for _, s := range pool.Solvers() {
		if s.Load() > s.Capacity() {
			return violation(RuleCapacityBound, "solver %s holds %d of %d", s.ID(), s.Load(), s.Capacity())
		}
		for _, id := range s.Assigned() {
			if where, dup := placed[id]; dup {
				return violation(RuleSinglePlacement, "order %s held by solver %s and %s", id, s.ID(), where)
			}
			placed[id] = "solver " + s.ID().String()

			o, ok := byID[id]
			if !ok {
				return violation(RuleSolverHoldsOrder, "solver %s holds unknown order %s", s.ID(), id)
			}
			if sid := o.Solver(); sid == nil || *sid != s.ID() {
				return violation(RuleSolverHoldsOrder, "solver %s holds order %s which is not assigned to it", s.ID(), id)
			}
		}
	}

	for _, id := range q.IDs() {
		if where, dup := placed[id]; dup {
			return violation(RuleSinglePlacement, "order %s queued and held by %s", id, where)
		}
		placed[id] = "queue"

		o, ok := byID[id]
		if !ok {
			return violation(RuleQueueMatchesStatus, "queue references unknown order %s", id)
		}
		if !o.IsAwaitingSolver() {
			return violation(RuleQueueMatchesStatus, "queued order %s is %s", id, o.Status())
		}
	}

	for _, o := range orders {
		sid := o.Solver()
		if (sid != nil) != o.Status().HoldsSolver() {
			return violation(RuleSolverMatchesStatus, "order %s is %s with solver %v", o.ID(), o.Status(), sid)
		}
		if sid != nil {
			s, err := pool.Get(*sid)
			if err != nil || !s.Holds(o.ID()) {
				return violation(RuleSolverHoldsOrder, "order %s names solver %s which does not hold it", o.ID(), sid)
			}
		}
		if o.IsAwaitingSolver() && !q.Contains(o.ID()) {
			return violation(RuleQueueMatchesStatus, "paid order %s is neither assigned nor queued", o.ID())
		}
	}

	return nil
}

func violation(rule, format string, args ...any) error {
	return errs.NewInvariantViolationError(rule, fmt.Sprintf(format, args...))
}
