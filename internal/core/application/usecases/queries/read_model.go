// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models built inside a read-only unit of work, so they
// always observe the state between two commands, never the middle of one.
package queries

import (
	"context"
	"time"

	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/core/domain/model/order"
	"solverdesk/internal/core/domain/model/solver"
	"solverdesk/internal/core/ports"
)

// ReadUoWFactory creates read-only units of work.
type ReadUoWFactory interface {
	CreateReadOnly() ports.UnitOfWork
}

// OrderView is the read model of one order.
type OrderView struct {
	ID          kernel.UUID
	Number      int64
	StudentName string
	Subject     string
	Description string
	Phone       string
	Deadline    time.Time
	CreatedAt   time.Time
	Status      order.Status
	SolverID    *kernel.SolverID
	// QueuePosition is the 1-based place in the wait queue, 0 when not queued.
	QueuePosition int
}

// SolverView is the read model of one solver and its load.
type SolverView struct {
	ID        kernel.SolverID
	Name      string
	Capacity  int
	Load      int
	FreeSlots int
	Assigned  []kernel.UUID
}

func readOnly(ctx context.Context, factory ReadUoWFactory, fn func(uow ports.UnitOfWork) error) error {
	uow := factory.CreateReadOnly()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return fn(uow)
}

func newOrderView(o *order.Order, queuePosition int) OrderView {
	r := o.Requester()
	return OrderView{
		ID:            o.ID(),
		Number:        o.Number(),
		StudentName:   r.StudentName(),
		Subject:       r.Subject(),
		Description:   r.Description(),
		Phone:         r.Phone().String(),
		Deadline:      o.Deadline(),
		CreatedAt:     o.CreatedAt(),
		Status:        o.Status(),
		SolverID:      o.Solver(),
		QueuePosition: queuePosition + 1,
	}
}

func newSolverView(s *solver.Solver) SolverView {
	return SolverView{
		ID:        s.ID(),
		Name:      s.Name(),
		Capacity:  s.Capacity(),
		Load:      s.Load(),
		FreeSlots: s.FreeSlots(),
		Assigned:  s.Assigned(),
	}
}
