package notify

import (
	"context"
	"log"
)

// MockNotifier implements the Notifier interface by logging messages to
// stdout. Used when no email API key is configured.
type MockNotifier struct{}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) Publish(ctx context.Context, to, subject, body string) error {
	log.Printf("📨 [MockNotifier] To %s: %s: %s", to, subject, body)
	return nil
}
