package services_test

import (
	"time"

	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/core/domain/model/order"
	"solverdesk/internal/core/domain/model/queue"
	"solverdesk/internal/core/domain/model/solver"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

// layout describes a desk independently of the aggregates so the same state
// can be built more than once.
type layout struct {
	capacities []int
	held       [][]kernel.UUID
	queued     []kernel.UUID
}

type desk struct {
	pool   *solver.Pool
	queue  *queue.WaitQueue
	orders map[kernel.UUID]*order.Order
}

type snapshot struct {
	queue    []kernel.UUID
	held     map[kernel.SolverID][]kernel.UUID
	statuses map[kernel.UUID]order.Status
}

// drawLayout draws a consistent desk. With settled set the desk is at a fixed
// point: orders wait only when every slot is taken.
func drawLayout(t *rapid.T, settled bool) layout {
	n := rapid.IntRange(1, 4).Draw(t, "solvers")
	l := layout{
		capacities: make([]int, n),
		held:       make([][]kernel.UUID, n),
	}

	full := true
	for i := range n {
		l.capacities[i] = rapid.IntRange(1, 5).Draw(t, "capacity")
		load := rapid.IntRange(0, l.capacities[i]).Draw(t, "load")
		for range load {
			l.held[i] = append(l.held[i], kernel.NewUUID())
		}
		full = full && load == l.capacities[i]
	}

	queued := 0
	if !settled || full {
		queued = rapid.IntRange(0, 8).Draw(t, "queued")
	}
	for range queued {
		l.queued = append(l.queued, kernel.NewUUID())
	}

	return l
}

func (l layout) build(t require.TestingT) *desk {
	requester, err := order.NewRequester("Ann Lee", "Algebra", "Exercises 1-5", "5550109999")
	require.NoError(t, err)

	d := &desk{orders: make(map[kernel.UUID]*order.Order)}
	number := int64(0)
	restore := func(id kernel.UUID, status order.Status, solverID *kernel.SolverID) {
		number++
		o, err := order.RestoreOrder(id, number, requester, now.Add(time.Hour), now, status, solverID)
		require.NoError(t, err)
		d.orders[id] = o
	}

	solvers := make([]*solver.Solver, 0, len(l.capacities))
	for i, capacity := range l.capacities {
		sid := kernel.SolverID(i + 1)
		s, err := solver.RestoreSolver(sid, "Solver "+sid.String(), capacity, l.held[i])
		require.NoError(t, err)
		solvers = append(solvers, s)
		for _, id := range l.held[i] {
			restore(id, order.Assigned, &sid)
		}
	}

	d.pool, err = solver.NewPool(solvers)
	require.NoError(t, err)

	d.queue, err = queue.RestoreWaitQueue(l.queued)
	require.NoError(t, err)
	for _, id := range l.queued {
		restore(id, order.Paid, nil)
	}

	return d
}

func (d *desk) list() []*order.Order {
	out := make([]*order.Order, 0, len(d.orders))
	for _, o := range d.orders {
		out = append(out, o)
	}
	return out
}

func (d *desk) snapshot() snapshot {
	s := snapshot{
		queue:    d.queue.IDs(),
		held:     make(map[kernel.SolverID][]kernel.UUID),
		statuses: make(map[kernel.UUID]order.Status),
	}
	for _, sv := range d.pool.Solvers() {
		s.held[sv.ID()] = sv.Assigned()
	}
	for id, o := range d.orders {
		s.statuses[id] = o.Status()
	}
	return s
}

func paidOrder(t require.TestingT, number int64) *order.Order {
	requester, err := order.NewRequester("Bo Chen", "Physics", "Lab report", "5550101234")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), number, requester, now.Add(24*time.Hour), now)
	require.NoError(t, err)
	require.NoError(t, o.Pay())
	return o
}
