package services_test

import (
	"testing"

	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/core/domain/model/order"
	"solverdesk/internal/core/domain/model/queue"
	"solverdesk/internal/core/domain/model/solver"
	"solverdesk/internal/core/domain/services"
	"solverdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyInvariants(t *testing.T) {
	t.Run("should accept consistent desk", func(t *testing.T) {
		d := layout{
			capacities: []int{2, 1},
			held:       [][]kernel.UUID{{kernel.NewUUID(), kernel.NewUUID()}, {kernel.NewUUID()}},
			queued:     []kernel.UUID{kernel.NewUUID()},
		}.build(t)

		require.NoError(t, services.VerifyInvariants(d.list(), d.pool, d.queue))
	})

	t.Run("should report paid order that is not queued", func(t *testing.T) {
		d := layout{capacities: []int{1}, held: [][]kernel.UUID{{kernel.NewUUID()}}}.build(t)
		o := paidOrder(t, 10)
		d.orders[o.ID()] = o

		err := services.VerifyInvariants(d.list(), d.pool, d.queue)

		require.ErrorIs(t, err, errs.ErrInvariantIsViolated)
		var violation *errs.InvariantViolationError
		require.ErrorAs(t, err, &violation)
		assert.Equal(t, services.RuleQueueMatchesStatus, violation.Rule)
	})

	t.Run("should report order held by solver but not assigned", func(t *testing.T) {
		o := paidOrder(t, 10)
		s, err := solver.RestoreSolver(1, "Solver A", 1, []kernel.UUID{o.ID()})
		require.NoError(t, err)
		pool, err := solver.NewPool([]*solver.Solver{s})
		require.NoError(t, err)

		err = services.VerifyInvariants([]*order.Order{o}, pool, queue.NewWaitQueue())

		var violation *errs.InvariantViolationError
		require.ErrorAs(t, err, &violation)
		assert.Equal(t, services.RuleSolverHoldsOrder, violation.Rule)
	})

	t.Run("should report order both queued and held", func(t *testing.T) {
		id := kernel.NewUUID()
		d := layout{
			capacities: []int{1},
			held:       [][]kernel.UUID{{id}},
		}.build(t)
		require.NoError(t, d.queue.PushBack(id))

		err := services.VerifyInvariants(d.list(), d.pool, d.queue)

		var violation *errs.InvariantViolationError
		require.ErrorAs(t, err, &violation)
		assert.Equal(t, services.RuleSinglePlacement, violation.Rule)
	})

	t.Run("should report assigned order missing from its solver", func(t *testing.T) {
		d := layout{capacities: []int{1}, held: make([][]kernel.UUID, 1)}.build(t)
		o := paidOrder(t, 10)
		require.NoError(t, o.Assign(1))
		d.orders[o.ID()] = o

		err := services.VerifyInvariants(d.list(), d.pool, d.queue)

		var violation *errs.InvariantViolationError
		require.ErrorAs(t, err, &violation)
		assert.Equal(t, services.RuleSolverHoldsOrder, violation.Rule)
	})
}
