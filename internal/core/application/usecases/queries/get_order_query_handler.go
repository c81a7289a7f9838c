package queries

import (
	"context"

	"solverdesk/internal/core/ports"
)

// GetOrderQueryHandler returns one order, or errs.ErrObjectNotFound.
type GetOrderQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewGetOrderQueryHandler(uowFactory ReadUoWFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{uowFactory: uowFactory}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	var view OrderView
	err := readOnly(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		o, err := uow.OrderRepository().Get(ctx, query.OrderID())
		if err != nil {
			return err
		}
		q, err := uow.QueueRepository().Get(ctx)
		if err != nil {
			return err
		}

		view = newOrderView(o, q.Position(o.ID()))
		return nil
	})

	return view, err
}
