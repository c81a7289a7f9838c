package queries

import (
	"context"

	"solverdesk/internal/core/domain/model/order"
	"solverdesk/internal/core/ports"
)

// GetBoardSummaryQueryHandler aggregates the whole desk in one consistent read.
type GetBoardSummaryQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewGetBoardSummaryQueryHandler(uowFactory ReadUoWFactory) GetBoardSummaryQueryHandler {
	return GetBoardSummaryQueryHandler{uowFactory: uowFactory}
}

func (h GetBoardSummaryQueryHandler) Handle(ctx context.Context, query GetBoardSummaryQuery) (BoardSummary, error) {
	if err := query.Validate(); err != nil {
		return BoardSummary{}, err
	}

	summary := BoardSummary{StatusCounts: make(map[order.Status]int)}
	for _, s := range order.Statuses() {
		if s != order.Cancelled {
			summary.StatusCounts[s] = 0
		}
	}

	err := readOnly(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		orders, err := uow.OrderRepository().GetAll(ctx)
		if err != nil {
			return err
		}
		pool, err := uow.SolverRepository().GetPool(ctx)
		if err != nil {
			return err
		}
		q, err := uow.QueueRepository().Get(ctx)
		if err != nil {
			return err
		}

		summary.TotalOrders = len(orders)
		for _, o := range orders {
			summary.StatusCounts[o.Status()]++
		}
		summary.QueueLength = q.Len()
		summary.TotalSlots = pool.Capacity()
		summary.FreeSlots = pool.FreeSlots()
		for _, s := range pool.Solvers() {
			summary.Solvers = append(summary.Solvers, newSolverView(s))
		}
		return nil
	})
	if err != nil {
		return BoardSummary{}, err
	}

	return summary, nil
}
