package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kerjahub/roster-backend-go/internal/domain/notification"
	"github.com/kerjahub/roster-backend-go/internal/pkg/database"
)

type notificationRepository struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepository{db: db}
}

// Create implements notification.Repository.
func (r *notificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	q := GetQuerier(ctx, r.db)

	var data []byte
	if n.Data != nil {
		var err error
		data, err = json.Marshal(n.Data)
		if err != nil {
			return fmt.Errorf("failed to encode notification data: %w", err)
		}
	}

	query := `
		INSERT INTO notifications (user_id, type, title, body, data)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, n.UserID, n.Type, n.Title, n.Body, data).
		Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

// ListByUser implements notification.Repository.
func (r *notificationRepository) ListByUser(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]notification.Notification, int64, error) {
	q := GetQuerier(ctx, r.db)

	filter := ``
	if unreadOnly {
		filter = ` AND is_read = FALSE`
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM notifications WHERE user_id = $1` + filter
	if err := q.QueryRow(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	query := `
		SELECT id, user_id, type, title, body, data, is_read, read_at, created_at
		FROM notifications
		WHERE user_id = $1` + filter + `
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var items []notification.Notification
	for rows.Next() {
		var n notification.Notification
		var data []byte
		err := rows.Scan(
			&n.ID, &n.UserID, &n.Type, &n.Title, &n.Body, &data,
			&n.IsRead, &n.ReadAt, &n.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan notification: %w", err)
		}
		if len(data) > 0 {
			if err := json.Unmarshal(data, &n.Data); err != nil {
				return nil, 0, fmt.Errorf("failed to decode notification data: %w", err)
			}
		}
		items = append(items, n)
	}

	return items, total, rows.Err()
}

// MarkAsRead implements notification.Repository.
func (r *notificationRepository) MarkAsRead(ctx context.Context, userID string, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notifications
		SET is_read = TRUE, read_at = NOW()
		WHERE id = $1 AND user_id = $2 AND is_read = FALSE
	`

	tag, err := q.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return r.classifyMiss(ctx, q, userID, id)
	}

	return nil
}

// DeleteOwn implements notification.Repository.
func (r *notificationRepository) DeleteOwn(ctx context.Context, userID string, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM notifications WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return r.classifyMiss(ctx, q, userID, id)
	}

	return nil
}

// classifyMiss tells a nonexistent notification apart from one owned by
// another user. Already-read records count as a no-op success for MarkAsRead.
func (r *notificationRepository) classifyMiss(ctx context.Context, q database.Querier, userID string, id string) error {
	var ownerID string
	var isRead bool
	err := q.QueryRow(ctx, `SELECT user_id, is_read FROM notifications WHERE id = $1`, id).
		Scan(&ownerID, &isRead)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notification.ErrNotificationNotFound
		}
		return fmt.Errorf("failed to look up notification: %w", err)
	}
	if ownerID != userID {
		return notification.ErrNotRecipient
	}
	return nil
}
