// Package http is the JSON API of the desk, served with echo.
//
// Routes:
//
//	GET    /health
//	POST   /api/v1/orders                         submit
//	GET    /api/v1/orders                         newest first
//	GET    /api/v1/orders/:id
//	POST   /api/v1/orders/:id/pay
//	POST   /api/v1/orders/:id/start
//	POST   /api/v1/orders/:id/complete
//	DELETE /api/v1/orders/:id                     cancel
//	GET    /api/v1/solvers
//	POST   /api/v1/solvers/:id/complete-oldest
//	GET    /api/v1/queue
//	GET    /api/v1/board
//
// Validation errors map to 400, unknown ids to 404, lifecycle violations to
// 409. Every error body is {"code": ..., "message": ...}.
package http
