package http

import (
	"errors"
	"net/http"

	"furniture/internal/generated/servers"
	"furniture/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps an application error to its HTTP status code.
func statusFor(err error) int {
	switch {
	case errs.IsInvalidArgument(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, errs.ErrObjectInUse):
		return http.StatusConflict
	case errors.Is(err, errs.ErrBusy):
		return http.StatusLocked
	case errors.Is(err, errs.ErrRepositoryUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) respondError(ctx echo.Context, op string, err error) error {
	code := statusFor(err)
	message := err.Error()

	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"operation", op,
			"status", code,
			"error", err,
		)
		// storage details stay in the log
		message = http.StatusText(code)
	}

	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
