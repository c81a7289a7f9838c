package commands

import (
	"context"
	"log/slog"
)

// StartOrderCommandHandler moves an order from Assigned to InProgress. The
// solver keeps the same slot, so no other aggregate changes.
type StartOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

func NewStartOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) StartOrderCommandHandler {
	return StartOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "start_order_handler"),
	}
}

func (h StartOrderCommandHandler) Handle(ctx context.Context, cmd StartOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Start(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.DebugContext(ctx, "order started", "order_id", o.ID().String())
	return nil
}
