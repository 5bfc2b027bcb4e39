package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eats/config"
	deliverycontext "eats/internal/delivery/context"
	"eats/internal/domain/constants"
	"eats/internal/domain/service"
	"eats/internal/infra/pubsub"
	mockSvc "eats/internal/mocks/service"
	"eats/internal/testutil"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newProcessor(t *testing.T) (*MailProcessor, *mockSvc.MockNotifier) {
	t.Helper()

	mailer := mockSvc.NewMockNotifier(t)

	return NewMailProcessor(MailProcessorParams{Mailer: mailer, Logger: testutil.DiscardLogger()}), mailer
}

func eventBody(t *testing.T, event *service.MailEvent) []byte {
	t.Helper()

	body, err := json.Marshal(event)
	require.NoError(t, err)

	return body
}

func TestMailProcessor_HandleMessage(t *testing.T) {
	t.Run("sends verification mail with request id", func(t *testing.T) {
		processor, mailer := newProcessor(t)
		mailer.EXPECT().SendVerificationEmail(mock.Anything, "a@x.com", "code-1").
			Run(func(ctx context.Context, _ string, _ string) {
				assert.Equal(t, "req-1", deliverycontext.GetRequestIDFromContext(ctx))
			}).
			Return(nil)

		err := processor.HandleMessage(context.Background(), eventBody(t, &service.MailEvent{
			RequestID: "req-1", EventID: "e1", Kind: service.MailEventVerification, Email: "a@x.com", Code: "code-1",
		}))
		require.NoError(t, err)
	})

	t.Run("send failure is retryable", func(t *testing.T) {
		processor, mailer := newProcessor(t)
		mailer.EXPECT().SendVerificationEmail(mock.Anything, "a@x.com", "c").Return(errors.New("smtp 421"))

		err := processor.HandleMessage(context.Background(), eventBody(t, &service.MailEvent{
			EventID: "e2", Kind: service.MailEventVerification, Email: "a@x.com", Code: "c",
		}))
		require.Error(t, err)
		assert.True(t, isRetryableError(err))

		var temporary interface{ Temporary() bool }
		require.True(t, errors.As(err, &temporary))
		assert.True(t, temporary.Temporary())
	})

	t.Run("malformed and unknown events are permanent", func(t *testing.T) {
		processor, _ := newProcessor(t)

		for _, body := range [][]byte{
			[]byte("{"),
			eventBody(t, &service.MailEvent{EventID: "e3", Kind: service.MailEventVerification}),
			eventBody(t, &service.MailEvent{EventID: "e4", Kind: "newsletter", Email: "a@x.com", Code: "c"}),
		} {
			err := processor.HandleMessage(context.Background(), body)
			require.Error(t, err)
			assert.False(t, isRetryableError(err))
		}
	})
}

func pushRequest(t *testing.T, data string, attrs map[string]string) *http.Request {
	t.Helper()

	var msg pubsub.PubSubPushMessage
	msg.Message.Data = data
	msg.Message.Attributes = attrs
	msg.Message.MessageID = "m1"
	msg.Subscription = "projects/local/subscriptions/mail-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func encodedEvent(t *testing.T, event *service.MailEvent) string {
	t.Helper()

	return base64.StdEncoding.EncodeToString(eventBody(t, event))
}

func servePush(h *PushHandler, req *http.Request) int {
	e := echo.New()
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec.Code
}

func newPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockSvc.MockNotifier) {
	t.Helper()

	processor, mailer := newProcessor(t)

	return NewPushHandler(PushHandlerParams{Config: cfg, Logger: testutil.DiscardLogger(), Processor: processor}), mailer
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := &service.MailEvent{EventID: "e1", Kind: service.MailEventVerification, Email: "a@x.com", Code: "c"}

	t.Run("delivers and uses attribute request id", func(t *testing.T) {
		h, mailer := newPushHandler(t, &config.Config{})
		mailer.EXPECT().SendVerificationEmail(mock.Anything, "a@x.com", "c").
			Run(func(ctx context.Context, _ string, _ string) {
				assert.Equal(t, "from-attr", deliverycontext.GetRequestIDFromContext(ctx))
			}).
			Return(nil)

		code := servePush(h, pushRequest(t, encodedEvent(t, event), map[string]string{"request_id": "from-attr"}))
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("retryable failure asks for redelivery", func(t *testing.T) {
		h, mailer := newPushHandler(t, &config.Config{})
		mailer.EXPECT().SendVerificationEmail(mock.Anything, "a@x.com", "c").Return(errors.New("timeout"))

		assert.Equal(t, http.StatusServiceUnavailable, servePush(h, pushRequest(t, encodedEvent(t, event), nil)))
	})

	t.Run("permanent failure is acknowledged", func(t *testing.T) {
		h, _ := newPushHandler(t, &config.Config{})
		unknown := &service.MailEvent{EventID: "e9", Kind: "promo", Email: "a@x.com", Code: "c"}

		assert.Equal(t, http.StatusOK, servePush(h, pushRequest(t, encodedEvent(t, unknown), nil)))
	})

	t.Run("bad payloads", func(t *testing.T) {
		h, _ := newPushHandler(t, &config.Config{})

		assert.Equal(t, http.StatusBadRequest, servePush(h, pushRequest(t, "%%%", nil)))
		assert.Equal(t, http.StatusBadRequest, servePush(h, pushRequest(t, base64.StdEncoding.EncodeToString([]byte("{")), nil)))
	})
}

func TestPushHandler_VerifiesGoogleTokens(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction
	event := &service.MailEvent{EventID: "e1", Kind: service.MailEventVerification, Email: "a@x.com", Code: "c"}

	t.Run("missing token", func(t *testing.T) {
		h, _ := newPushHandler(t, cfg)
		require.True(t, h.verifyPushAuth)

		assert.Equal(t, http.StatusUnauthorized, servePush(h, pushRequest(t, encodedEvent(t, event), nil)))
	})

	t.Run("wrong issuer", func(t *testing.T) {
		h, _ := newPushHandler(t, cfg)
		h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "evil.example.com"}, nil
		}

		req := pushRequest(t, encodedEvent(t, event), nil)
		req.Header.Set("Authorization", "Bearer token")
		assert.Equal(t, http.StatusUnauthorized, servePush(h, req))
	})

	t.Run("valid token", func(t *testing.T) {
		h, mailer := newPushHandler(t, cfg)
		h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "token", token)
			assert.Equal(t, "http://example.com/push", audience)

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}
		mailer.EXPECT().SendVerificationEmail(mock.Anything, "a@x.com", "c").Return(nil)

		req := pushRequest(t, encodedEvent(t, event), nil)
		req.Header.Set("Authorization", "Bearer token")
		assert.Equal(t, http.StatusOK, servePush(h, req))
	})

	t.Run("dev skips verification", func(t *testing.T) {
		devCfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
		devCfg.Env.Env = constants.EnvDevelop

		h, _ := newPushHandler(t, devCfg)
		assert.False(t, h.verifyPushAuth)
	})
}
