package commands

import (
	"context"
	"log/slog"

	"solverdesk/internal/core/domain/services"
)

// PayOrderCommandHandler moves an order from PendingPayment to Paid and runs
// the scheduler so the order is assigned or queued before the command returns.
//
// Example:
//
//	handler := NewPayOrderCommandHandler(uowFactory, logger)
//	cmd, _ := NewPayOrderCommand(orderID)
//	switch err := handler.Handle(ctx, cmd); {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // already paid, or cancelled meanwhile
//	}
type PayOrderCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewPayOrderCommandHandler creates a handler for payments.
func NewPayOrderCommandHandler(uowFactory UoWFactory, logger *slog.Logger) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "pay_order_handler"),
	}
}

// Handle processes the payment within a single transaction.
func (h PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) error {
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

	if err = o.Pay(); err != nil {
		return err
	}

	assignments, err := services.NewScheduler().Admit(o, d.queue, d.pool, d.orders)
	if err != nil {
		return err
	}

	if err = d.save(ctx); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "order paid", "order_id", o.ID().String(), "queued", d.queue.Contains(o.ID()))
	logAssignments(ctx, h.logger, assignments)
	return nil
}
