package commands_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"solverdesk/internal/core/application/usecases/commands"
	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	now        = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	fixedClock = func() time.Time { return now }
	discard    = slog.New(slog.DiscardHandler)
)

func newSubmitCommand(t *testing.T, deadline string) commands.SubmitOrderCommand {
	t.Helper()
	cmd, err := commands.NewSubmitOrderCommand(kernel.NewUUID(), "Ann Lee", "Algebra", "Exercises 1-5", "555-010-9999", deadline)
	require.NoError(t, err)
	return cmd
}

func TestSubmitOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newSubmitCommand(t, "2026-10-20T12:00:00Z")

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("NextNumber", ctx).Return(int64(7), nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitOrderCommandHandler(factory, fixedClock, discard)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, cmd.OrderID(), result.ID)
	assert.Equal(t, int64(7), result.Number)
	assert.Equal(t, order.PendingPayment, result.Status)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSubmitOrderCommandHandler_Handle_PastDeadline(t *testing.T) {
	ctx := t.Context()
	cmd := newSubmitCommand(t, "2026-10-19T12:00:00Z")

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("NextNumber", ctx).Return(int64(1), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitOrderCommandHandler(factory, fixedClock, discard)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrPastDeadline)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestSubmitOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	h := commands.NewSubmitOrderCommandHandler(factory, fixedClock, discard)

	_, err := h.Handle(t.Context(), commands.SubmitOrderCommand{})

	require.ErrorIs(t, err, commands.ErrSubmitOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestSubmitOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := newSubmitCommand(t, "2030-01-01")

	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewSubmitOrderCommandHandler(factory, fixedClock, discard)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Rollback", mock.Anything)
}

func TestSubmitOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := newSubmitCommand(t, "2030-01-01")

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("NextNumber", ctx).Return(int64(1), nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitOrderCommandHandler(factory, fixedClock, discard)
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
	uow.AssertExpectations(t)
}
