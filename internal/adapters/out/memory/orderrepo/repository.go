package orderrepo

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/core/domain/model/order"
	"solverdesk/internal/pkg/errs"
)

// ErrOrderAlreadyExists is returned by Add for a duplicate id.
var ErrOrderAlreadyExists = errs.NewValueIsInvalidError("order already exists")

// tableSource hands out the table bound to the current unit of work. write is
// false for lookups and true before any change.
type tableSource interface {
	OrderTable(write bool) (*Table, error)
}

// MemoryOrderRepository implements OrderRepository over a Table.
type MemoryOrderRepository struct {
	source tableSource
}

// NewMemoryOrderRepository creates a repository bound to source.
func NewMemoryOrderRepository(source tableSource) *MemoryOrderRepository {
	return &MemoryOrderRepository{source: source}
}

// Add saves a new order.
func (r *MemoryOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	t, err := r.table(ctx, true)
	if err != nil {
		return err
	}
	if err = aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if _, ok := t.rows[dto.ID]; ok {
		return fmt.Errorf("%w: %s", ErrOrderAlreadyExists, aggregate.ID())
	}

	t.rows[dto.ID] = dto
	return nil
}

// Update saves an existing order.
func (r *MemoryOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	t, err := r.table(ctx, true)
	if err != nil {
		return err
	}
	if err = aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if _, ok := t.rows[dto.ID]; !ok {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	t.rows[dto.ID] = dto
	return nil
}

// Remove deletes an order by id.
func (r *MemoryOrderRepository) Remove(ctx context.Context, id kernel.UUID) error {
	t, err := r.table(ctx, true)
	if err != nil {
		return err
	}

	if _, ok := t.rows[id.Bytes()]; !ok {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	delete(t.rows, id.Bytes())
	return nil
}

// Get retrieves an order by ID.
func (r *MemoryOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	t, err := r.table(ctx, false)
	if err != nil {
		return nil, err
	}

	dto, ok := t.rows[id.Bytes()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return toDomain(dto)
}

// GetMany retrieves orders in the order of ids.
func (r *MemoryOrderRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(ids))
	for _, id := range ids {
		o, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// GetAll retrieves every order, highest submission number first.
func (r *MemoryOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	t, err := r.table(ctx, false)
	if err != nil {
		return nil, err
	}

	dtos := make([]OrderDTO, 0, len(t.rows))
	for _, dto := range t.rows {
		dtos = append(dtos, dto)
	}
	slices.SortFunc(dtos, func(a, b OrderDTO) int {
		return cmp.Compare(b.Number, a.Number)
	})

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// NextNumber reserves the next submission number.
func (r *MemoryOrderRepository) NextNumber(ctx context.Context) (int64, error) {
	t, err := r.table(ctx, true)
	if err != nil {
		return 0, err
	}

	return t.sequence.Add(1), nil
}

func (r *MemoryOrderRepository) table(ctx context.Context, write bool) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.source.OrderTable(write)
}
