package commands_test

import (
	"context"

	"solverdesk/internal/core/application/usecases/commands"
	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/core/domain/model/order"
	"solverdesk/internal/core/domain/model/queue"
	"solverdesk/internal/core/domain/model/solver"
	"solverdesk/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) NextNumber(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockSolverRepository struct{ mock.Mock }

func (m *MockSolverRepository) Get(ctx context.Context, id kernel.SolverID) (*solver.Solver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*solver.Solver), args.Error(1)
}

func (m *MockSolverRepository) GetPool(ctx context.Context) (*solver.Pool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*solver.Pool), args.Error(1)
}

func (m *MockSolverRepository) UpdatePool(ctx context.Context, pool *solver.Pool) error {
	args := m.Called(ctx, pool)
	return args.Error(0)
}

type MockQueueRepository struct{ mock.Mock }

func (m *MockQueueRepository) Get(ctx context.Context) (*queue.WaitQueue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queue.WaitQueue), args.Error(1)
}

func (m *MockQueueRepository) Save(ctx context.Context, q *queue.WaitQueue) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) SolverRepository() ports.SolverRepository {
	args := m.Called()
	return args.Get(0).(ports.SolverRepository)
}

func (m *MockUoW) QueueRepository() ports.QueueRepository {
	args := m.Called()
	return args.Get(0).(ports.QueueRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}
