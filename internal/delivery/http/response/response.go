// Package response renders the non-GraphQL JSON endpoints.
package response

import (
	"net/http"

	deliverycontext "eats/internal/delivery/context"
	domainerrors "eats/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Success writes data wrapped with request metadata.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, domainerrors.NewSuccessResponse(data, deliverycontext.GetRequestID(c)))
}

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
