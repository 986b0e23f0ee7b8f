package notification

import "time"

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeScheduleStatusChange NotificationType = "schedule_status_change"
	TypeCheckInReminder      NotificationType = "check_in_reminder"
	TypeCheckOutReminder     NotificationType = "check_out_reminder"
	TypeAutoCheckout         NotificationType = "auto_checkout"
	TypeAnnouncement         NotificationType = "announcement"
)

// Notification is one persisted inbox entry for a user. Reminder pushes are
// transient and never stored.
type Notification struct {
	ID        string
	UserID    string
	Type      NotificationType
	Title     string
	Body      string
	Data      map[string]interface{}
	IsRead    bool
	ReadAt    *time.Time
	CreatedAt time.Time
}
