package services

import (
	"errors"
	"fmt"

	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/core/domain/model/order"
	"solverdesk/internal/core/domain/model/queue"
	"solverdesk/internal/core/domain/model/solver"
	"solverdesk/internal/pkg/errs"
)

// ErrOrderIsNotAwaitingSolver is returned by Admit for an order that is not
// Paid or already has a solver.
var ErrOrderIsNotAwaitingSolver = errors.New("order is not awaiting a solver")

// Assignment records one order handed to one solver during a pass.
type Assignment struct {
	OrderID  kernel.UUID
	SolverID kernel.SolverID
}

// Scheduler is a domain service that matches waiting orders with free solver
// slots.
//
// Business rules:
//   - Orders are taken strictly from the front of the wait queue
//   - The free solver with the lowest id wins
//   - A pass runs until the queue is empty or no solver has a free slot
//   - Running a pass twice without any mutation in between assigns nothing the second time
//
// Example usage:
//
//	scheduler := services.NewScheduler()
//	if err := o.Pay(); err != nil {
//	    return err
//	}
//	assignments, err := scheduler.Admit(o, waitQueue, pool, orders)
type Scheduler struct{}

// NewScheduler creates a new Scheduler instance.
func NewScheduler() Scheduler {
	return Scheduler{}
}

// Pass drains the wait queue into free solver slots.
//
// orders must contain every queued order. A queued id with no order, an
// order that refuses assignment, or a slot that cannot be reserved means the
// aggregates are out of sync; Pass panics with an InvariantViolationError in
// that case.
func (s Scheduler) Pass(q *queue.WaitQueue, pool *solver.Pool, orders map[kernel.UUID]*order.Order) []Assignment {
	var assignments []Assignment

	for !q.IsEmpty() {
		solverID, ok := pool.FirstAvailable()
		if !ok {
			break
		}

		orderID, _ := q.PopFront()
		assignments = append(assignments, s.assign(orderID, solverID, pool, orders))
	}

	return assignments
}

// Admit places a freshly paid order. When nobody is waiting and a slot is free
// the order is assigned directly, which is observably the same as PushBack
// followed by Pass. Otherwise it joins the back of the queue and a pass runs.
func (s Scheduler) Admit(
	o *order.Order,
	q *queue.WaitQueue,
	pool *solver.Pool,
	orders map[kernel.UUID]*order.Order,
) ([]Assignment, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if !o.IsAwaitingSolver() {
		return nil, fmt.Errorf("%w: %s is %s", ErrOrderIsNotAwaitingSolver, o.ID(), o.Status())
	}

	if q.IsEmpty() {
		if solverID, ok := pool.FirstAvailable(); ok {
			orders[o.ID()] = o
			return []Assignment{s.assign(o.ID(), solverID, pool, orders)}, nil
		}
	}

	if err := q.PushBack(o.ID()); err != nil {
		return nil, err
	}
	orders[o.ID()] = o

	return s.Pass(q, pool, orders), nil
}

func (s Scheduler) assign(
	orderID kernel.UUID,
	solverID kernel.SolverID,
	pool *solver.Pool,
	orders map[kernel.UUID]*order.Order,
) Assignment {
	o, ok := orders[orderID]
	if !ok {
		panic(errs.NewInvariantViolationError("queued order exists", orderID.String()))
	}
	if err := pool.Reserve(solverID, orderID); err != nil {
		panic(errs.NewInvariantViolationError("capacity bound", err.Error()))
	}
	if err := o.Assign(solverID); err != nil {
		panic(errs.NewInvariantViolationError("queued order is paid", err.Error()))
	}

	return Assignment{OrderID: orderID, SolverID: solverID}
}
