package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "eats/internal/delivery/context"
	domainerrors "eats/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware renders transport-level failures. GraphQL resolver errors never reach it.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	requestID := deliverycontext.GetRequestID(c)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.write(c, appErr.HTTPCode(), domainerrors.NewErrorResponse(appErr, requestID))

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		m.write(c, httpErr.Code, domainerrors.NewCodedErrorResponse("HTTP_ERROR", fmt.Sprint(httpErr.Message), requestID))

		return
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.write(c, http.StatusInternalServerError, domainerrors.NewErrorResponse(domainerrors.ErrInternalError, requestID))
}

func (m *ErrorMiddleware) write(c echo.Context, status int, body *domainerrors.ErrorResponse) {
	var err error
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", err))
	}
}
