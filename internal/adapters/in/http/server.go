package http

import (
	"log/slog"
	"net/http"

	"solverdesk/internal/core/application/usecases/commands"
	"solverdesk/internal/core/application/usecases/queries"
	"solverdesk/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the use cases exposed over HTTP.
type Handlers struct {
	// Command handlers
	SubmitOrder    commands.SubmitOrderCommandHandler
	PayOrder       commands.PayOrderCommandHandler
	StartOrder     commands.StartOrderCommandHandler
	CompleteOrder  commands.CompleteOrderCommandHandler
	CancelOrder    commands.CancelOrderCommandHandler
	CompleteOldest commands.CompleteOldestCommandHandler

	// Query handlers
	ListOrders      queries.ListOrdersQueryHandler
	GetOrder        queries.GetOrderQueryHandler
	ListSolvers     queries.ListSolversQueryHandler
	ListQueue       queries.ListQueueQueryHandler
	GetBoardSummary queries.GetBoardSummaryQueryHandler
}

// Server translates HTTP requests into commands and queries.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http_server"),
	}
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// SubmitOrder handles POST /api/v1/orders - records a new order awaiting payment.
func (s *Server) SubmitOrder(c echo.Context) error {
	var body NewOrder
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewSubmitOrderCommand(
		kernel.NewUUID(),
		body.StudentName,
		body.Subject,
		body.Description,
		body.Phone,
		body.Deadline,
	)
	if err != nil {
		return s.writeError(c, err, "Failed to submit order")
	}

	result, err := s.handlers.SubmitOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err, "Failed to submit order")
	}

	return c.JSON(http.StatusCreated, toSubmittedOrder(result))
}

// ListOrders handles GET /api/v1/orders - every order, newest first.
func (s *Server) ListOrders(c echo.Context) error {
	views, err := s.handlers.ListOrders.Handle(c.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return s.writeError(c, err, "Failed to retrieve orders")
	}

	response := make([]Order, len(views))
	for i, v := range views {
		response[i] = toOrder(v)
	}

	return c.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.writeError(c, err, "Failed to retrieve order")
	}

	return s.respondWithOrder(c, id, http.StatusOK)
}

// PayOrder handles POST /api/v1/orders/:id/pay. The response shows whether
// the order got a solver at once or is waiting in the queue.
func (s *Server) PayOrder(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.writeError(c, err, "Failed to pay order")
	}

	cmd, err := commands.NewPayOrderCommand(id)
	if err != nil {
		return s.writeError(c, err, "Failed to pay order")
	}
	if err = s.handlers.PayOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err, "Failed to pay order")
	}

	return s.respondWithOrder(c, id, http.StatusOK)
}

// StartOrder handles POST /api/v1/orders/:id/start.
func (s *Server) StartOrder(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.writeError(c, err, "Failed to start order")
	}

	cmd, err := commands.NewStartOrderCommand(id)
	if err != nil {
		return s.writeError(c, err, "Failed to start order")
	}
	if err = s.handlers.StartOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err, "Failed to start order")
	}

	return s.respondWithOrder(c, id, http.StatusOK)
}

// CompleteOrder handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteOrder(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.writeError(c, err, "Failed to complete order")
	}

	cmd, err := commands.NewCompleteOrderCommand(id)
	if err != nil {
		return s.writeError(c, err, "Failed to complete order")
	}
	if err = s.handlers.CompleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err, "Failed to complete order")
	}

	return s.respondWithOrder(c, id, http.StatusOK)
}

// CancelOrder handles DELETE /api/v1/orders/:id. Cancelled orders are
// removed from the desk, so there is nothing to return.
func (s *Server) CancelOrder(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.writeError(c, err, "Failed to cancel order")
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return s.writeError(c, err, "Failed to cancel order")
	}
	if err = s.handlers.CancelOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err, "Failed to cancel order")
	}

	return c.NoContent(http.StatusNoContent)
}

// ListSolvers handles GET /api/v1/solvers.
func (s *Server) ListSolvers(c echo.Context) error {
	views, err := s.handlers.ListSolvers.Handle(c.Request().Context(), queries.NewListSolversQuery())
	if err != nil {
		return s.writeError(c, err, "Failed to retrieve solvers")
	}

	response := make([]Solver, len(views))
	for i, v := range views {
		response[i] = toSolver(v)
	}

	return c.JSON(http.StatusOK, response)
}

// CompleteOldest handles POST /api/v1/solvers/:id/complete-oldest.
func (s *Server) CompleteOldest(c echo.Context) error {
	solverID, err := kernel.SolverIDFromString(c.Param("id"))
	if err != nil {
		return s.writeError(c, err, "Failed to complete order")
	}

	cmd, err := commands.NewCompleteOldestCommand(solverID)
	if err != nil {
		return s.writeError(c, err, "Failed to complete order")
	}

	orderID, err := s.handlers.CompleteOldest.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err, "Failed to complete order")
	}

	return c.JSON(http.StatusOK, CompletedOrder{OrderID: orderID.String()})
}

// ListQueue handles GET /api/v1/queue.
func (s *Server) ListQueue(c echo.Context) error {
	entries, err := s.handlers.ListQueue.Handle(c.Request().Context(), queries.NewListQueueQuery())
	if err != nil {
		return s.writeError(c, err, "Failed to retrieve queue")
	}

	response := make([]QueueEntry, len(entries))
	for i, e := range entries {
		response[i] = toQueueEntry(e)
	}

	return c.JSON(http.StatusOK, response)
}

// GetBoard handles GET /api/v1/board.
func (s *Server) GetBoard(c echo.Context) error {
	summary, err := s.handlers.GetBoardSummary.Handle(c.Request().Context(), queries.NewGetBoardSummaryQuery())
	if err != nil {
		return s.writeError(c, err, "Failed to retrieve board")
	}

	return c.JSON(http.StatusOK, toBoard(summary))
}

func (s *Server) respondWithOrder(c echo.Context, id kernel.UUID, code int) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.writeError(c, err, "Failed to retrieve order")
	}

	view, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err, "Failed to retrieve order")
	}

	return c.JSON(code, toOrder(view))
}
