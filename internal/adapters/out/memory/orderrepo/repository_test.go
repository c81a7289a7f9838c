package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"solverdesk/internal/adapters/out/memory/orderrepo"
	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/core/domain/model/order"
	"solverdesk/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

var now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

type stagedTable struct {
	table *orderrepo.Table
}

func (s stagedTable) OrderTable(bool) (*orderrepo.Table, error) {
	return s.table, nil
}

type OrderRepositoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	table *orderrepo.Table
	repo  *orderrepo.MemoryOrderRepository
}

func (suite *OrderRepositoryTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.table = orderrepo.NewTable()
	suite.repo = orderrepo.NewMemoryOrderRepository(stagedTable{table: suite.table})
}

func (suite *OrderRepositoryTestSuite) newOrder(number int64) *order.Order {
	requester, err := order.NewRequester("Ann Lee", "Algebra", "Exercises 1-5", "+1 (555) 010-9999")
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), number, requester, now.Add(time.Hour), now)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryTestSuite) TestAdd_ValidOrder_Success() {
	o := suite.newOrder(1)

	suite.Require().NoError(suite.repo.Add(suite.ctx, o))

	got, err := suite.repo.Get(suite.ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(got.IsEqual(o))
	suite.Equal(o.Number(), got.Number())
	suite.Equal(o.Requester(), got.Requester())
	suite.Equal(o.Deadline(), got.Deadline())
	suite.Equal(order.PendingPayment, got.Status())
	suite.Nil(got.Solver())
}

func (suite *OrderRepositoryTestSuite) TestAdd_Duplicate_ReturnsError() {
	o := suite.newOrder(1)
	suite.Require().NoError(suite.repo.Add(suite.ctx, o))

	err := suite.repo.Add(suite.ctx, o)

	suite.Require().ErrorIs(err, orderrepo.ErrOrderAlreadyExists)
}

func (suite *OrderRepositoryTestSuite) TestAdd_NotConstructed_ReturnsError() {
	suite.Require().ErrorIs(suite.repo.Add(suite.ctx, &order.Order{}), order.ErrOrderIsNotConstructed)
}

func (suite *OrderRepositoryTestSuite) TestUpdate_KeepsSolverAssignment() {
	o := suite.newOrder(1)
	suite.Require().NoError(suite.repo.Add(suite.ctx, o))
	suite.Require().NoError(o.Pay())
	suite.Require().NoError(o.Assign(2))

	suite.Require().NoError(suite.repo.Update(suite.ctx, o))

	got, err := suite.repo.Get(suite.ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Assigned, got.Status())
	suite.Equal(kernel.SolverID(2), *got.Solver())
}

func (suite *OrderRepositoryTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFound() {
	suite.Require().ErrorIs(suite.repo.Update(suite.ctx, suite.newOrder(1)), errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestRemove() {
	o := suite.newOrder(1)
	suite.Require().NoError(suite.repo.Add(suite.ctx, o))

	suite.Require().NoError(suite.repo.Remove(suite.ctx, o.ID()))

	_, err := suite.repo.Get(suite.ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.repo.Remove(suite.ctx, o.ID()), errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestGetAll_NewestFirst() {
	for _, n := range []int64{2, 5, 1, 3} {
		suite.Require().NoError(suite.repo.Add(suite.ctx, suite.newOrder(n)))
	}

	orders, err := suite.repo.GetAll(suite.ctx)

	suite.Require().NoError(err)
	numbers := make([]int64, 0, len(orders))
	for _, o := range orders {
		numbers = append(numbers, o.Number())
	}
	suite.Equal([]int64{5, 3, 2, 1}, numbers)
}

func (suite *OrderRepositoryTestSuite) TestGetMany_KeepsRequestedOrder() {
	a, b := suite.newOrder(1), suite.newOrder(2)
	suite.Require().NoError(suite.repo.Add(suite.ctx, a))
	suite.Require().NoError(suite.repo.Add(suite.ctx, b))

	orders, err := suite.repo.GetMany(suite.ctx, []kernel.UUID{b.ID(), a.ID()})

	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.True(orders[0].IsEqual(b))
	suite.True(orders[1].IsEqual(a))

	_, err = suite.repo.GetMany(suite.ctx, []kernel.UUID{a.ID(), kernel.NewUUID()})
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestClone_IsolatesRows() {
	o := suite.newOrder(1)
	suite.Require().NoError(suite.repo.Add(suite.ctx, o))

	staged := suite.table.Clone()
	stagedRepo := orderrepo.NewMemoryOrderRepository(stagedTable{table: staged})
	suite.Require().NoError(stagedRepo.Remove(suite.ctx, o.ID()))

	suite.Equal(0, staged.Len())
	suite.Equal(1, suite.table.Len())

	n, err := stagedRepo.NextNumber(suite.ctx)
	suite.Require().NoError(err)
	m, err := suite.repo.NextNumber(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(n+1, m)
}

func (suite *OrderRepositoryTestSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(suite.ctx)
	cancel()

	_, err := suite.repo.GetAll(ctx)

	suite.Require().ErrorIs(err, context.Canceled)
}

func TestOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryTestSuite))
}
