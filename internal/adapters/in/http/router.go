package http

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gommonlog "github.com/labstack/gommon/log"
)

// NewRouter builds the echo instance serving s. echoLevel limits echo's own
// logger, request logs go through the server's slog logger.
func NewRouter(s *Server, echoLevel gommonlog.Lvl) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(echoLevel)
	e.HTTPErrorHandler = errorHandler(s)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.LogAttrs(c.Request().Context(), slog.LevelDebug, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	s.Register(e)
	return e
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/orders", s.SubmitOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/pay", s.PayOrder)
	api.POST("/orders/:id/start", s.StartOrder)
	api.POST("/orders/:id/complete", s.CompleteOrder)
	api.DELETE("/orders/:id", s.CancelOrder)

	api.GET("/solvers", s.ListSolvers)
	api.POST("/solvers/:id/complete-oldest", s.CompleteOldest)

	api.GET("/queue", s.ListQueue)
	api.GET("/board", s.GetBoard)
}
