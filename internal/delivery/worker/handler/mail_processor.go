// Package handler turns queued mail events into sent mail.
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "eats/internal/delivery/context"
	"eats/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// retryableError marks failures worth redelivering.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// Temporary makes the error requeue on RabbitMQ.
func (e *retryableError) Temporary() bool {
	return true
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// MailProcessor sends the mail described by a MailEvent.
type MailProcessor struct {
	mailer service.Notifier
	logger *slog.Logger
}

// MailProcessorParams holds dependencies for MailProcessor.
type MailProcessorParams struct {
	fx.In

	Mailer service.Notifier
	Logger *slog.Logger
}

// NewMailProcessor creates a new mail processor.
func NewMailProcessor(params MailProcessorParams) *MailProcessor {
	return &MailProcessor{
		mailer: params.Mailer,
		logger: params.Logger,
	}
}

// HandleMessage decodes a JSON MailEvent and processes it. It satisfies rabbitmq.Handler.
func (p *MailProcessor) HandleMessage(ctx context.Context, body []byte) error {
	event, err := DecodeMailEvent(body)
	if err != nil {
		return err
	}

	if event.RequestID != "" && deliverycontext.GetRequestIDFromContext(ctx) == "" {
		ctx = deliverycontext.WithRequestID(ctx, event.RequestID)
		ctx = deliverycontext.WithLogger(ctx, p.logger.With(slog.String("request_id", event.RequestID)))
	}

	return p.Process(ctx, event)
}

// DecodeMailEvent parses and checks an event body.
func DecodeMailEvent(body []byte) (*service.MailEvent, error) {
	var event service.MailEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, errors.Wrap(err, "parse mail event")
	}

	if strings.TrimSpace(event.Email) == "" || strings.TrimSpace(event.Code) == "" {
		return nil, errors.Errorf("mail event %q is missing email or code", event.EventID)
	}

	return &event, nil
}

// Process sends the event's mail. Send failures are retryable, unknown kinds are not.
func (p *MailProcessor) Process(ctx context.Context, event *service.MailEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, p.logger).With(
		slog.String("event_id", event.EventID),
		slog.String("kind", event.Kind),
	)

	switch event.Kind {
	case service.MailEventVerification, "":
		if err := p.mailer.SendVerificationEmail(ctx, event.Email, event.Code); err != nil {
			return newRetryableError(err)
		}
	default:
		return errors.Errorf("unknown mail event kind %q", event.Kind)
	}

	logger.Info("[Worker] Mail sent")

	return nil
}
