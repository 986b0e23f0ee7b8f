package notification

import "context"

// Service is the notification dispatcher plus the inbox operations.
type Service interface {
	// Queue hands a notification to the background dispatcher. It returns
	// quickly; persistence and push delivery happen on the worker.
	Queue(ctx context.Context, req QueueRequest) error

	// SendTransient pushes directly to a device token without persisting
	// anything. Used by broadcast reminders. Best-effort.
	SendTransient(ctx context.Context, fcmToken string, title, body string, data map[string]string) bool

	// Inbox operations
	List(ctx context.Context, userID string, unreadOnly bool, limit, offset int) (ListResponse, error)
	MarkAsRead(ctx context.Context, userID string, id string) error
	Delete(ctx context.Context, userID string, id string) error

	// Stop drains the queue and stops the workers.
	Stop()
}
