// Package memory provides the in-memory implementation of the Unit of Work
// pattern over the whole desk state: orders, the solver roster and the wait
// queue.
//
// A Store holds the committed state behind one sync.RWMutex. A writing unit
// of work holds the write lock from Begin until Commit or Rollback and works
// on private copies of the tables, so every command is applied atomically or
// not at all. Read-only units of work hold the read lock and see the committed
// tables directly.
//
// Usage:
//
//	store, err := memory.NewStore(roster)
//	if err != nil {
//	    return err
//	}
//	factory := memory.NewUnitOfWorkFactory(store)
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package memory

import (
	"sync"

	"solverdesk/internal/adapters/out/memory/orderrepo"
	"solverdesk/internal/adapters/out/memory/queuerepo"
	"solverdesk/internal/adapters/out/memory/solverrepo"
	"solverdesk/internal/core/domain/model/solver"
)

// Store owns the committed desk state. There is exactly one per process and
// it is shared by every unit of work created from it.
type Store struct {
	mu sync.RWMutex

	orders  *orderrepo.Table
	solvers *solverrepo.Table
	queue   *queuerepo.Table
}

// NewStore creates an empty desk staffed by roster. Solver ids must be unique
// and the solvers must not hold any orders yet.
func NewStore(roster []*solver.Solver) (*Store, error) {
	solvers, err := solverrepo.NewTable(roster)
	if err != nil {
		return nil, err
	}

	return &Store{
		orders:  orderrepo.NewTable(),
		solvers: solvers,
		queue:   queuerepo.NewTable(),
	}, nil
}
