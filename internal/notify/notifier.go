package notify

import "context"

// Notifier defines the interface for delivering user-facing notifications.
// This abstraction allows swapping the log-only mock with a real email
// provider without refactoring.
type Notifier interface {
	Publish(ctx context.Context, to, subject, body string) error
}
