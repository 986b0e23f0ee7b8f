package notification

import "errors"

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotRecipient         = errors.New("you are not allowed to modify this notification")
)
