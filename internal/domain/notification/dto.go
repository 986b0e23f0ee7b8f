package notification

import "time"

// QueueRequest is an outbound notification event. It is published after the
// triggering domain transition commits and consumed asynchronously; delivery
// failure never reaches the publisher.
type QueueRequest struct {
	UserID string
	Type   NotificationType
	Title  string
	Body   string
	Data   map[string]interface{}
}

// NotificationResponse is one inbox row.
type NotificationResponse struct {
	ID        string                 `json:"id"`
	Type      NotificationType       `json:"type"`
	Title     string                 `json:"title"`
	Body      string                 `json:"body"`
	Data      map[string]interface{} `json:"data,omitempty"`
	IsRead    bool                   `json:"is_read"`
	ReadAt    *time.Time             `json:"read_at,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// ListResponse wraps a paginated inbox.
type ListResponse struct {
	TotalCount    int64                  `json:"total_count"`
	Notifications []NotificationResponse `json:"notifications"`
}
