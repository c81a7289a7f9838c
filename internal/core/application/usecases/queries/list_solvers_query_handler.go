package queries

import (
	"context"

	"solverdesk/internal/core/ports"
)

// ListSolversQueryHandler reports each solver's load and held orders.
type ListSolversQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewListSolversQueryHandler(uowFactory ReadUoWFactory) ListSolversQueryHandler {
	return ListSolversQueryHandler{uowFactory: uowFactory}
}

func (h ListSolversQueryHandler) Handle(ctx context.Context, query ListSolversQuery) ([]SolverView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]SolverView, 0)
	err := readOnly(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		pool, err := uow.SolverRepository().GetPool(ctx)
		if err != nil {
			return err
		}

		for _, s := range pool.Solvers() {
			views = append(views, newSolverView(s))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return views, nil
}
