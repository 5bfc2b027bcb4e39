package service

import (
	"context"
)

// MailEventVerification is the kind of event emitted when a verification code must be mailed.
const MailEventVerification = "verification"

// MailEvent is queued by the API and consumed by the mail worker.
type MailEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	EventID   string `json:"event_id"`
	Kind      string `json:"kind"`
	Email     string `json:"email"`
	Code      string `json:"code"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMailEvent publishes a mail event for async delivery
	PublishMailEvent(ctx context.Context, event *MailEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
