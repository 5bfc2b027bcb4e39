// Package context carries per-request values (request id, scoped logger and
// the authenticated user) from the HTTP edge down to resolvers and use cases.
package context

import (
	"context"
	"log/slog"

	"eats/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header name for request ID.
const HeaderXRequestID = "X-Request-Id"

type key uint8

const (
	keyRequestID key = iota
	keyLogger
	keyUser
)

// echoRequestIDKey stores the request id on echo.Context so error rendering
// can read it even after the request context was replaced.
const echoRequestIDKey = "request_id"

func value[T any](ctx context.Context, k key) (T, bool) {
	v, ok := ctx.Value(k).(T)

	return v, ok
}

// GetRequestID returns the request id stored on c, or a fresh UUID when the
// request never passed through the request id middleware.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// SetRequestID stores the request id on c.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestIDFromContext returns "" when ctx carries no request id.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := value[string](ctx, keyRequestID)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := value[*slog.Logger](ctx, keyLogger); ok && logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// WithUser attaches the authenticated user.
func WithUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, keyUser, user)
}

// GetUser returns nil for anonymous requests.
func GetUser(ctx context.Context) *entity.User {
	user, _ := value[*entity.User](ctx, keyUser)

	return user
}
