package http

import (
	"errors"
	"net/http"
	"strings"

	"solverdesk/internal/core/application/usecases/commands"
	"solverdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusCode classifies a use case error.
func statusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, commands.ErrNoOrdersInProgress):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(c echo.Context, err error, internalMessage string) error {
	code := statusCode(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), internalMessage,
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		return c.JSON(code, Error{Code: code, Message: internalMessage})
	}

	// errors.Join separates field errors with newlines.
	msg := strings.ReplaceAll(err.Error(), "\n", "; ")
	return c.JSON(code, Error{Code: code, Message: msg})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

// errorHandler renders errors raised by echo itself (unknown route, wrong
// method, recovered panic) in the same shape as use case errors.
func errorHandler(s *Server) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := http.StatusText(code)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				msg = m
			}
		}
		if code == http.StatusInternalServerError {
			s.logger.ErrorContext(c.Request().Context(), "request failed", "path", c.Path(), "error", err)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, Error{Code: code, Message: msg})
	}
}
