// Package notification delivers verification codes either directly over SMTP
// or by queueing a MailEvent for the mail worker.
package notification

import (
	"context"
	"log/slog"

	"eats/config"
	deliverycontext "eats/internal/delivery/context"
	"eats/internal/domain/constants"
	"eats/internal/domain/service"
	"eats/internal/infra/mail"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type directNotifier struct {
	sender service.MailSender
	logger *slog.Logger
}

// NewDirectNotifier sends verification mail from the calling process.
func NewDirectNotifier(sender service.MailSender, logger *slog.Logger) service.Notifier {
	return &directNotifier{sender: sender, logger: logger}
}

func (n *directNotifier) SendVerificationEmail(ctx context.Context, email, code string) error {
	if err := n.sender.Send(ctx, mail.VerificationMessage(email, code)); err != nil {
		return errors.Wrap(err, "send verification email")
	}

	return nil
}

type queuedNotifier struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewQueuedNotifier publishes a MailEvent for asynchronous delivery.
func NewQueuedNotifier(publisher service.EventPublisher, logger *slog.Logger) service.Notifier {
	return &queuedNotifier{publisher: publisher, logger: logger}
}

func (n *queuedNotifier) SendVerificationEmail(ctx context.Context, email, code string) error {
	event := &service.MailEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventID:   uuid.NewString(),
		Kind:      service.MailEventVerification,
		Email:     email,
		Code:      code,
	}

	if err := n.publisher.PublishMailEvent(ctx, event); err != nil {
		return errors.Wrap(err, "queue verification email")
	}
	n.logger.DebugContext(ctx, "Verification email queued", slog.String("event_id", event.EventID))

	return nil
}

// Params holds the dependencies NewNotifier chooses from
type Params struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Sender    service.MailSender
	Publisher service.EventPublisher `optional:"true"`
}

// NewNotifier picks the notifier for the configured mode.
func NewNotifier(params Params) (service.Notifier, error) {
	mode := constants.NotifierModeDirect
	if params.Config.Notifier != nil && params.Config.Notifier.Mode != "" {
		mode = params.Config.Notifier.Mode
	}

	switch mode {
	case constants.NotifierModeDirect:
		params.Logger.Info("Verification emails are sent over SMTP")

		return NewDirectNotifier(params.Sender, params.Logger), nil
	case constants.NotifierModeQueued:
		if params.Publisher == nil {
			return nil, errors.New("queued notifier requires an event publisher")
		}
		params.Logger.Info("Verification emails are queued for the mail worker")

		return NewQueuedNotifier(params.Publisher, params.Logger), nil
	default:
		return nil, errors.Errorf("unknown notifier mode: %s", mode)
	}
}
