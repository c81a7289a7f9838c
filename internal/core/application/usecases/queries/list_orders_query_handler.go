package queries

import (
	"context"

	"solverdesk/internal/core/ports"
)

// ListOrdersQueryHandler builds the order list shown on the desk.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(uowFactory)
//	orders, err := handler.Handle(ctx, NewListOrdersQuery())
//	if err != nil {
//	    return err
//	}
//	for _, o := range orders {
//	    fmt.Printf("#%d %s %s\n", o.Number, o.Subject, o.Status)
//	}
type ListOrdersQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewListOrdersQueryHandler(uowFactory ReadUoWFactory) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{uowFactory: uowFactory}
}

// Handle returns the orders newest first with their queue positions.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]OrderView, 0)
	err := readOnly(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		orders, err := uow.OrderRepository().GetAll(ctx)
		if err != nil {
			return err
		}
		q, err := uow.QueueRepository().Get(ctx)
		if err != nil {
			return err
		}

		for _, o := range orders {
			views = append(views, newOrderView(o, q.Position(o.ID())))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return views, nil
}
