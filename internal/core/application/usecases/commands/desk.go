package commands

import (
	"context"
	"log/slog"

	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/core/domain/model/order"
	"solverdesk/internal/core/domain/model/queue"
	"solverdesk/internal/core/domain/model/solver"
	"solverdesk/internal/core/domain/services"
	"solverdesk/internal/core/ports"
)

// desk is the working set of one scheduling command: the pool, the queue and
// every order loaded so far, keyed by id so each order has one instance.
type desk struct {
	orderRepo  ports.OrderRepository
	solverRepo ports.SolverRepository
	queueRepo  ports.QueueRepository

	pool   *solver.Pool
	queue  *queue.WaitQueue
	orders map[kernel.UUID]*order.Order
}

func loadDesk(ctx context.Context, uow UoW) (*desk, error) {
	d := &desk{
		orderRepo:  uow.OrderRepository(),
		solverRepo: uow.SolverRepository(),
		queueRepo:  uow.QueueRepository(),
		orders:     make(map[kernel.UUID]*order.Order),
	}

	var err error
	if d.pool, err = d.solverRepo.GetPool(ctx); err != nil {
		return nil, err
	}
	if d.queue, err = d.queueRepo.Get(ctx); err != nil {
		return nil, err
	}

	waiting, err := d.orderRepo.GetMany(ctx, d.queue.IDs())
	if err != nil {
		return nil, err
	}
	for _, o := range waiting {
		d.orders[o.ID()] = o
	}

	return d, nil
}

// order returns the loaded instance of id, fetching it on first use.
func (d *desk) order(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if o, ok := d.orders[id]; ok {
		return o, nil
	}

	o, err := d.orderRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	d.orders[id] = o
	return o, nil
}

// release frees the slot of an order that is leaving Assigned or InProgress.
func (d *desk) release(solverID *kernel.SolverID, orderID kernel.UUID) error {
	if solverID == nil {
		return nil
	}
	return d.pool.Release(*solverID, orderID)
}

func (d *desk) pass() []services.Assignment {
	return services.NewScheduler().Pass(d.queue, d.pool, d.orders)
}

func (d *desk) save(ctx context.Context) error {
	for _, o := range d.orders {
		if err := d.orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}
	if err := d.solverRepo.UpdatePool(ctx, d.pool); err != nil {
		return err
	}
	return d.queueRepo.Save(ctx, d.queue)
}

func logAssignments(ctx context.Context, logger *slog.Logger, assignments []services.Assignment) {
	for _, a := range assignments {
		logger.InfoContext(ctx, "order assigned",
			"order_id", a.OrderID.String(),
			"solver_id", a.SolverID.Int(),
		)
	}
}
