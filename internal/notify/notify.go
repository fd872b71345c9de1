// Package notify delivers order notifications to the configured chat webhook.
package notify

import (
	"context"
	"fmt"
)

// Message is one notification to be delivered.
type Message struct {
	// Text is the formatted order summary.
	Text string

	// UserName identifies the sender to the chat bot; the storefront passes
	// the customer code.
	UserName string
}

// Notifier defines the interface for sending order notifications.
// Implementations can use the Telegram webhook or a mock for testing.
type Notifier interface {
	// Send delivers the message. A nil return means the endpoint accepted it.
	Send(ctx context.Context, msg Message) error
}

// WebhookError is returned when the endpoint responded but reported failure.
// Message carries the endpoint's own error text when it provided one.
type WebhookError struct {
	StatusCode int
	Message    string
}

func (e *WebhookError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("webhook rejected notification (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("webhook rejected notification (status %d)", e.StatusCode)
}
