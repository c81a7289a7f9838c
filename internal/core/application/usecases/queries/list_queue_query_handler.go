package queries

import (
	"context"

	"solverdesk/internal/core/ports"
)

// ListQueueQueryHandler lists the wait queue in FIFO order.
type ListQueueQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewListQueueQueryHandler(uowFactory ReadUoWFactory) ListQueueQueryHandler {
	return ListQueueQueryHandler{uowFactory: uowFactory}
}

func (h ListQueueQueryHandler) Handle(ctx context.Context, query ListQueueQuery) ([]QueueEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]QueueEntry, 0)
	err := readOnly(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		q, err := uow.QueueRepository().Get(ctx)
		if err != nil {
			return err
		}
		orders, err := uow.OrderRepository().GetMany(ctx, q.IDs())
		if err != nil {
			return err
		}

		for i, o := range orders {
			entries = append(entries, QueueEntry{
				Position:    i + 1,
				OrderID:     o.ID(),
				Number:      o.Number(),
				StudentName: o.Requester().StudentName(),
				Subject:     o.Requester().Subject(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}
