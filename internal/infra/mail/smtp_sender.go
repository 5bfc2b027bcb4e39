package mail

import (
	"context"
	"log/slog"
	"time"

	"eats/config"
	"eats/internal/domain/service"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"
)

const sendTimeout = 15 * time.Second

// deliverer is the part of *gomail.Client the sender uses.
type deliverer interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

type smtpSender struct {
	client    deliverer
	fromName  string
	fromEmail string
	logger    *slog.Logger
}

// NewSMTPSender builds a MailSender backed by an authenticated SMTP client.
func NewSMTPSender(cfg *config.Config, logger *slog.Logger) (service.MailSender, error) {
	mailCfg := cfg.Mail
	if mailCfg == nil {
		return nil, errors.New("mail configuration is required")
	}

	client, err := gomail.NewClient(mailCfg.Host,
		gomail.WithPort(mailCfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(mailCfg.Username),
		gomail.WithPassword(mailCfg.APIKey),
		gomail.WithTLSPolicy(tlsPolicy(mailCfg.TLS)),
		gomail.WithTimeout(sendTimeout),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create SMTP client")
	}

	return newSMTPSender(client, mailCfg.FromName, mailCfg.FromEmail, logger), nil
}

func newSMTPSender(client deliverer, fromName, fromEmail string, logger *slog.Logger) *smtpSender {
	return &smtpSender{
		client:    client,
		fromName:  fromName,
		fromEmail: fromEmail,
		logger:    logger,
	}
}

func tlsPolicy(policy string) gomail.TLSPolicy {
	switch policy {
	case "opportunistic":
		return gomail.TLSOpportunistic
	case "none":
		return gomail.NoTLS
	default:
		return gomail.TLSMandatory
	}
}

func (s *smtpSender) Send(ctx context.Context, msg *service.MailMessage) error {
	m, err := s.build(msg)
	if err != nil {
		return err
	}

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return errors.Wrap(err, "send mail")
	}
	s.logger.DebugContext(ctx, "Mail sent", slog.String("to", msg.To), slog.String("subject", msg.Subject))

	return nil
}

func (s *smtpSender) build(msg *service.MailMessage) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if s.fromName != "" {
		if err := m.FromFormat(s.fromName, s.fromEmail); err != nil {
			return nil, errors.Wrap(err, "set sender")
		}
	} else if err := m.From(s.fromEmail); err != nil {
		return nil, errors.Wrap(err, "set sender")
	}
	if err := m.To(msg.To); err != nil {
		return nil, errors.Wrapf(err, "set recipient %q", msg.To)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)
	if msg.HTML != "" {
		m.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	}

	return m, nil
}
