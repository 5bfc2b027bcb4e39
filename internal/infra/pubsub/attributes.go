package pubsub

import "eats/internal/domain/service"

// eventAttributes are message attributes for filtering and tracing.
func eventAttributes(event *service.MailEvent) map[string]string {
	attributes := map[string]string{
		"event_id": event.EventID,
		"kind":     event.Kind,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
