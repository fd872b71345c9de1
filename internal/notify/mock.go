package notify

import "context"

// MockNotifier is a test implementation of Notifier. It records every
// delivered message; the zero value accepts everything.
type MockNotifier struct {
	SendFunc func(ctx context.Context, msg Message) error

	// Sent accumulates the messages passed to Send, in order.
	Sent []Message
}

// NewMockNotifier creates a mock notifier that accepts all messages.
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

// Send delegates to the configured function or accepts the message.
func (m *MockNotifier) Send(ctx context.Context, msg Message) error {
	m.Sent = append(m.Sent, msg)
	if m.SendFunc != nil {
		return m.SendFunc(ctx, msg)
	}
	return nil
}
