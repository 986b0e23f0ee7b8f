package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	ListByUser(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]Notification, int64, error)
	MarkAsRead(ctx context.Context, userID string, id string) error

	// DeleteOwn removes a notification only when it belongs to userID;
	// otherwise ErrNotRecipient.
	DeleteOwn(ctx context.Context, userID string, id string) error
}
