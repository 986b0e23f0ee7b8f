package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kerjahub/roster-backend-go/internal/domain/user"
	"github.com/kerjahub/roster-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

// GetByID implements user.UserRepository.
func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, fcm_token, is_admin, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var u user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.FCMToken, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return u, nil
}

// UpdateOwnPushToken implements user.UserRepository.
func (r *userRepository) UpdateOwnPushToken(ctx context.Context, userID string, token string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE users SET fcm_token = NULLIF($2, ''), updated_at = NOW() WHERE id = $1`

	tag, err := q.Exec(ctx, query, userID, token)
	if err != nil {
		return fmt.Errorf("failed to update push token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// GetDistinctPushTokens implements user.UserRepository.
func (r *userRepository) GetDistinctPushTokens(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT DISTINCT fcm_token FROM users WHERE fcm_token IS NOT NULL AND fcm_token <> ''`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list push tokens: %w", err)
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, fmt.Errorf("failed to scan push token: %w", err)
		}
		tokens = append(tokens, token)
	}

	return tokens, rows.Err()
}
