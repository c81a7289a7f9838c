package memory

import (
	"context"
	"errors"

	"solverdesk/internal/adapters/out/memory/orderrepo"
	"solverdesk/internal/adapters/out/memory/queuerepo"
	"solverdesk/internal/adapters/out/memory/solverrepo"
	"solverdesk/internal/core/domain/services"
	"solverdesk/internal/core/ports"
	"solverdesk/internal/pkg/errs"
)

var (
	// ErrNoActiveTransaction is returned when a unit of work is used outside Begin/Commit.
	ErrNoActiveTransaction = errors.New("no active transaction")
	// ErrReadOnlyTransaction is returned when a read-only unit of work is asked to write.
	ErrReadOnlyTransaction = errors.New("transaction is read-only")
)

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory for units of work over store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a writing unit of work.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// CreateReadOnly produces a unit of work for queries.
func (f *UnitOfWorkFactory) CreateReadOnly() ports.UnitOfWork {
	return &UnitOfWork{store: f.store, readOnly: true}
}

// UnitOfWork is one transaction over a Store. It is not safe for use by more
// than one goroutine; every command creates its own.
type UnitOfWork struct {
	store    *Store
	readOnly bool
	active   bool

	orders  *orderrepo.Table
	solvers *solverrepo.Table
	queue   *queuerepo.Table
}

// Begin acquires the store lock and opens the transaction. Calling Begin on an
// active unit of work is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s := uow.store
	if uow.readOnly {
		s.mu.RLock()
		uow.orders, uow.solvers, uow.queue = s.orders, s.solvers, s.queue
	} else {
		s.mu.Lock()
		uow.orders, uow.solvers, uow.queue = s.orders.Clone(), s.solvers.Clone(), s.queue.Clone()
	}

	uow.active = true
	return nil
}

// Commit verifies the desk invariants on the staged tables and publishes them.
// An invariant violation is a defect in the calling code: the staged changes
// are dropped, the lock is released and Commit panics with the
// *errs.InvariantViolationError.
func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	if uow.readOnly {
		uow.release()
		return nil
	}

	if err := uow.verify(context.WithoutCancel(ctx)); err != nil {
		uow.release()
		if errors.Is(err, errs.ErrInvariantIsViolated) {
			panic(err)
		}
		return err
	}

	s := uow.store
	s.orders, s.solvers, s.queue = uow.orders, uow.solvers, uow.queue
	uow.release()
	return nil
}

// Rollback discards the staged tables and releases the lock.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.release()
	return nil
}

// OrderRepository returns an OrderRepository bound to this unit of work.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewMemoryOrderRepository(uow)
}

// SolverRepository returns a SolverRepository bound to this unit of work.
func (uow *UnitOfWork) SolverRepository() ports.SolverRepository {
	return solverrepo.NewMemorySolverRepository(uow)
}

// QueueRepository returns a QueueRepository bound to this unit of work.
func (uow *UnitOfWork) QueueRepository() ports.QueueRepository {
	return queuerepo.NewMemoryQueueRepository(uow)
}

// OrderTable hands the order table to repositories.
func (uow *UnitOfWork) OrderTable(write bool) (*orderrepo.Table, error) {
	if err := uow.check(write); err != nil {
		return nil, err
	}
	return uow.orders, nil
}

// SolverTable hands the roster table to repositories.
func (uow *UnitOfWork) SolverTable(write bool) (*solverrepo.Table, error) {
	if err := uow.check(write); err != nil {
		return nil, err
	}
	return uow.solvers, nil
}

// QueueTable hands the queue table to repositories.
func (uow *UnitOfWork) QueueTable(write bool) (*queuerepo.Table, error) {
	if err := uow.check(write); err != nil {
		return nil, err
	}
	return uow.queue, nil
}

func (uow *UnitOfWork) check(write bool) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	if write && uow.readOnly {
		return ErrReadOnlyTransaction
	}
	return nil
}

func (uow *UnitOfWork) verify(ctx context.Context) error {
	orders, err := uow.OrderRepository().GetAll(ctx)
	if err != nil {
		return err
	}
	pool, err := uow.SolverRepository().GetPool(ctx)
	if err != nil {
		return err
	}
	q, err := uow.QueueRepository().Get(ctx)
	if err != nil {
		return err
	}

	return services.VerifyInvariants(orders, pool, q)
}

func (uow *UnitOfWork) release() {
	if uow.readOnly {
		uow.store.mu.RUnlock()
	} else {
		uow.store.mu.Unlock()
	}

	uow.active = false
	uow.orders, uow.solvers, uow.queue = nil, nil, nil
}
