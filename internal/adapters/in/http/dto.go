package http

import (
	"time"

	"solverdesk/internal/core/application/usecases/commands"
	"solverdesk/internal/core/application/usecases/queries"
	"solverdesk/internal/core/domain/model/kernel"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrder is the body of POST /api/v1/orders. Deadline accepts RFC 3339,
// "2006-01-02T15:04" and "2006-01-02"; values without a zone are read in
// the server's local time.
type NewOrder struct {
	StudentName string `json:"student_name"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Phone       string `json:"phone"`
	Deadline    string `json:"deadline"`
}

// SubmittedOrder is returned by POST /api/v1/orders.
type SubmittedOrder struct {
	ID     string `json:"id"`
	Number int64  `json:"number"`
	Status string `json:"status"`
}

// Order is one order as shown on the desk.
type Order struct {
	ID            string    `json:"id"`
	Number        int64     `json:"number"`
	StudentName   string    `json:"student_name"`
	Subject       string    `json:"subject"`
	Description   string    `json:"description"`
	Phone         string    `json:"phone"`
	Deadline      time.Time `json:"deadline"`
	CreatedAt     time.Time `json:"created_at"`
	Status        string    `json:"status"`
	SolverID      *int      `json:"solver_id,omitempty"`
	QueuePosition int       `json:"queue_position,omitempty"`
}

// Solver is one solver and its current load.
type Solver struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Capacity  int      `json:"capacity"`
	Load      int      `json:"load"`
	FreeSlots int      `json:"free_slots"`
	Assigned  []string `json:"assigned"`
}

// QueueEntry is one waiting order.
type QueueEntry struct {
	Position    int    `json:"position"`
	OrderID     string `json:"order_id"`
	Number      int64  `json:"number"`
	StudentName string `json:"student_name"`
	Subject     string `json:"subject"`
}

// Board is the desk overview.
type Board struct {
	TotalOrders  int            `json:"total_orders"`
	StatusCounts map[string]int `json:"status_counts"`
	QueueLength  int            `json:"queue_length"`
	TotalSlots   int            `json:"total_slots"`
	FreeSlots    int            `json:"free_slots"`
	Solvers      []Solver       `json:"solvers"`
}

// CompletedOrder is returned by POST /api/v1/solvers/:id/complete-oldest.
type CompletedOrder struct {
	OrderID string `json:"order_id"`
}

func toSubmittedOrder(r commands.SubmitOrderResult) SubmittedOrder {
	return SubmittedOrder{
		ID:     r.ID.String(),
		Number: r.Number,
		Status: r.Status.String(),
	}
}

func toOrder(v queries.OrderView) Order {
	o := Order{
		ID:            v.ID.String(),
		Number:        v.Number,
		StudentName:   v.StudentName,
		Subject:       v.Subject,
		Description:   v.Description,
		Phone:         v.Phone,
		Deadline:      v.Deadline,
		CreatedAt:     v.CreatedAt,
		Status:        v.Status.String(),
		QueuePosition: v.QueuePosition,
	}
	if v.SolverID != nil {
		id := v.SolverID.Int()
		o.SolverID = &id
	}
	return o
}

func toSolver(v queries.SolverView) Solver {
	return Solver{
		ID:        v.ID.Int(),
		Name:      v.Name,
		Capacity:  v.Capacity,
		Load:      v.Load,
		FreeSlots: v.FreeSlots,
		Assigned:  uuidStrings(v.Assigned),
	}
}

func toQueueEntry(e queries.QueueEntry) QueueEntry {
	return QueueEntry{
		Position:    e.Position,
		OrderID:     e.OrderID.String(),
		Number:      e.Number,
		StudentName: e.StudentName,
		Subject:     e.Subject,
	}
}

func toBoard(s queries.BoardSummary) Board {
	b := Board{
		TotalOrders:  s.TotalOrders,
		StatusCounts: make(map[string]int, len(s.StatusCounts)),
		QueueLength:  s.QueueLength,
		TotalSlots:   s.TotalSlots,
		FreeSlots:    s.FreeSlots,
		Solvers:      make([]Solver, len(s.Solvers)),
	}
	for status, n := range s.StatusCounts {
		b.StatusCounts[status.String()] = n
	}
	for i, v := range s.Solvers {
		b.Solvers[i] = toSolver(v)
	}
	return b
}

func uuidStrings(ids []kernel.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
