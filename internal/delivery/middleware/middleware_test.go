package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"eats/config"
	deliverycontext "eats/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(c.Request().Context()))
	})

	return e
}

func TestRequestIDMiddleware_KeepsIncomingID(t *testing.T) {
	e := newTestEcho(&bytes.Buffer{}, false)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "abc")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "abc", rec.Body.String())
	assert.Equal(t, "abc", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	e := newTestEcho(&bytes.Buffer{}, false)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.NotEmpty(t, rec.Body.String())
	assert.Equal(t, rec.Body.String(), rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestLoggerMiddleware(t *testing.T) {
	t.Run("debug logs request", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, true)

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "log-me")
		e.ServeHTTP(httptest.NewRecorder(), req)

		assert.Contains(t, buf.String(), `"msg":"HTTP Request"`)
		assert.Contains(t, buf.String(), `"request_id":"log-me"`)
		assert.Contains(t, buf.String(), `"status":200`)
	})

	t.Run("silent without debug", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, false)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Empty(t, buf.String())
	})
}

func TestRequestIDMiddleware_ReplacesUnusableID(t *testing.T) {
	for name, id := range map[string]string{
		"whitespace": "has space",
		"too long":   string(bytes.Repeat([]byte("a"), maxRequestIDLength+1)),
	} {
		t.Run(name, func(t *testing.T) {
			e := newTestEcho(&bytes.Buffer{}, false)

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set(deliverycontext.HeaderXRequestID, id)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.NotEqual(t, id, rec.Body.String())
			assert.Len(t, rec.Body.String(), 36)
		})
	}
}
