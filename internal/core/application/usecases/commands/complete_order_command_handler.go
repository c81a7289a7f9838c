package commands

import (
	"context"
	"log/slog"

	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/core/domain/services"
)

// CompleteOrderCommandHandler finishes an InProgress order, releases its
// solver slot and lets the front of the wait queue take it.
type CompleteOrderCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(uowFactory UoWFactory, logger *slog.Logger) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "complete_order_handler"),
	}
}

// Handle completes the order and runs one scheduler pass in the same transaction.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := loadDesk(ctx, uow)
	if err != nil {
		return err
	}

	assignments, err := completeOrder(ctx, d, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order completed", "order_id", cmd.OrderID().String())
	logAssignments(ctx, h.logger, assignments)
	return nil
}

// completeOrder applies the completion to the loaded desk and stages it.
func completeOrder(ctx context.Context, d *desk, orderID kernel.UUID) ([]services.Assignment, error) {
	o, err := d.order(ctx, orderID)
	if err != nil {
		return nil, err
	}

	holder := o.Solver()
	if err = o.Complete(); err != nil {
		return nil, err
	}

	if err = d.release(holder, o.ID()); err != nil {
		return nil, err
	}

	assignments := d.pass()
	if err = d.save(ctx); err != nil {
		return nil, err
	}

	return assignments, nil
}
