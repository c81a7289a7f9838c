package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/core/domain/model/order"
)

// ErrNoOrdersInProgress is returned when the solver holds no InProgress order.
var ErrNoOrdersInProgress = errors.New("solver has no orders in progress")

// CompleteOldestCommandHandler completes the InProgress order that the solver
// took first. Assigned orders the solver has not started are skipped.
type CompleteOldestCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewCompleteOldestCommandHandler creates the handler.
func NewCompleteOldestCommandHandler(uowFactory UoWFactory, logger *slog.Logger) CompleteOldestCommandHandler {
	return CompleteOldestCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "complete_oldest_handler"),
	}
}

// Handle returns the id of the completed order.
func (h CompleteOldestCommandHandler) Handle(ctx context.Context, cmd CompleteOldestCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := loadDesk(ctx, uow)
	if err != nil {
		return kernel.UUID{}, err
	}

	s, err := d.pool.Get(cmd.SolverID())
	if err != nil {
		return kernel.UUID{}, err
	}

	var oldest *order.Order
	for _, id := range s.Assigned() {
		o, err := d.order(ctx, id)
		if err != nil {
			return kernel.UUID{}, err
		}
		if o.Status() == order.InProgress {
			oldest = o
			break
		}
	}
	if oldest == nil {
		return kernel.UUID{}, fmt.Errorf("%w: solver %s", ErrNoOrdersInProgress, cmd.SolverID())
	}

	assignments, err := completeOrder(ctx, d, oldest.ID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	h.logger.InfoContext(ctx, "oldest order completed",
		"solver_id", cmd.SolverID().Int(),
		"order_id", oldest.ID().String(),
	)
	logAssignments(ctx, h.logger, assignments)
	return oldest.ID(), nil
}
