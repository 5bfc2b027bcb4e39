package service

import "context"

// Notifier delivers a verification code to an email address.
// Callers treat delivery as best effort: errors are logged, never surfaced to clients.
type Notifier interface {
	SendVerificationEmail(ctx context.Context, email, code string) error
}

// MailMessage is a rendered email ready for a transport.
type MailMessage struct {
	To      string
	Subject string
	Body    string
	// HTML is an optional alternative part
	HTML string
}

// MailSender hands a rendered message to a mail transport.
type MailSender interface {
	Send(ctx context.Context, msg *MailMessage) error
}
