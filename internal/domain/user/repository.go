package user

import "context"

type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)

	// UpdateOwnPushToken is the only write this repository exposes: a user
	// may replace their own device token and nothing else.
	UpdateOwnPushToken(ctx context.Context, userID string, token string) error

	// GetDistinctPushTokens returns every registered token once, for
	// broadcast reminders. Shared devices register the same token for
	// multiple users; deduplication avoids double pushes.
	GetDistinctPushTokens(ctx context.Context) ([]string, error)
}
