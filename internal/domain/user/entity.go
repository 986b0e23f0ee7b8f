package user

import "time"

// User is the application account an employee signs in with. FCMToken is the
// device push token registered from the mobile app; nil means the user never
// registered a device or logged out of it.
type User struct {
	ID        string
	Email     string
	FCMToken  *string
	IsAdmin   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
