package commands

import (
	"context"
	"log/slog"
	"time"

	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/core/domain/model/order"
)

// SubmitOrderResult identifies a freshly submitted order.
type SubmitOrderResult struct {
	ID     kernel.UUID
	Number int64
	Status order.Status
}

// SubmitOrderCommandHandler stores a new order in PendingPayment status.
// Submission never touches solvers or the wait queue.
//
// Example:
//
//	handler := NewSubmitOrderCommandHandler(uowFactory, time.Now, logger)
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrPastDeadline) {
//	    return fmt.Errorf("deadline already passed: %w", err)
//	}
//	fmt.Printf("order #%d awaiting payment", result.Number)
type SubmitOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      func() time.Time
	logger     *slog.Logger
}

// NewSubmitOrderCommandHandler creates a handler for order submission.
// clock decides what "in the future" means for deadlines; nil uses time.Now.
func NewSubmitOrderCommandHandler(
	uowFactory OrderUoWFactory,
	clock func() time.Time,
	logger *slog.Logger,
) SubmitOrderCommandHandler {
	if clock == nil {
		clock = time.Now
	}

	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		logger:     logger.With("component", "submit_order_handler"),
	}
}

// Handle validates the deadline against the clock, reserves a submission
// number and stores the order.
func (h SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (SubmitOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return SubmitOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SubmitOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	number, err := orderRepo.NextNumber(ctx)
	if err != nil {
		return SubmitOrderResult{}, err
	}

	o, err := order.NewOrder(cmd.OrderID(), number, cmd.Requester(), cmd.Deadline(), h.clock())
	if err != nil {
		return SubmitOrderResult{}, err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return SubmitOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return SubmitOrderResult{}, err
	}

	h.logger.InfoContext(ctx, "order submitted",
		"order_id", o.ID().String(),
		"number", o.Number(),
		"subject", o.Requester().Subject(),
	)

	return SubmitOrderResult{ID: o.ID(), Number: o.Number(), Status: o.Status()}, nil
}
