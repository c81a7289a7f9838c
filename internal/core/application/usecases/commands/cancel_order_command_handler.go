package commands

import (
	"context"
	"fmt"
	"log/slog"

	"solverdesk/internal/pkg/errs"
)

// CancelOrderCommandHandler withdraws an order that is not yet completed. A held slot is released, a queued entry is dropped, and the
// order is removed. Cancelling again therefore reports the order as not found.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for cancellations.
func NewCancelOrderCommandHandler(uowFactory UoWFactory, logger *slog.Logger) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "cancel_order_handler"),
	}
}

// Handle cancels the order and runs one scheduler pass in the same transaction.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	o, err := d.order(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	holder, queued := o.Solver(), o.IsAwaitingSolver()
	if err = o.Cancel(); err != nil {
		return err
	}

	if err = d.release(holder, o.ID()); err != nil {
		return err
	}
	if queued && !d.queue.Remove(o.ID()) {
		return errs.NewInvariantViolationError("queued exactly when paid and unassigned",
			fmt.Sprintf("paid order %s missing from queue", o.ID()))
	}

	delete(d.orders, o.ID())
	if err = d.orderRepo.Remove(ctx, o.ID()); err != nil {
		return err
	}

	assignments := d.pass()
	if err = d.save(ctx); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order cancelled", "order_id", o.ID().String(), "freed_slot", holder != nil)
	logAssignments(ctx, h.logger, assignments)
	return nil
}
