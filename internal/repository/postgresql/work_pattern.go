package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kerjahub/roster-backend-go/internal/domain/master/pattern"
	"github.com/kerjahub/roster-backend-go/internal/pkg/database"
)

type workPatternRepository struct {
	db *database.DB
}

func NewWorkPatternRepository(db *database.DB) pattern.WorkPatternRepository {
	return &workPatternRepository{db: db}
}

// Create implements pattern.WorkPatternRepository.
func (r *workPatternRepository) Create(ctx context.Context, p pattern.WorkPattern) (pattern.WorkPattern, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_patterns (name, store_location_id, work_from, work_to)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.Name,
		p.StoreLocationID,
		p.WorkFrom,
		p.WorkTo,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return pattern.WorkPattern{}, fmt.Errorf("failed to create work pattern: %w", err)
	}

	return p, nil
}

// GetByID implements pattern.WorkPatternRepository.
func (r *workPatternRepository) GetByID(ctx context.Context, id string) (pattern.WorkPattern, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, store_location_id, work_from, work_to, created_at, updated_at
		FROM work_patterns
		WHERE id = $1
	`

	var p pattern.WorkPattern
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.StoreLocationID, &p.WorkFrom, &p.WorkTo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return pattern.WorkPattern{}, pattern.ErrWorkPatternNotFound
		}
		return pattern.WorkPattern{}, fmt.Errorf("failed to get work pattern by ID: %w", err)
	}

	return p, nil
}

// GetByStoreLocationID implements pattern.WorkPatternRepository.
func (r *workPatternRepository) GetByStoreLocationID(ctx context.Context, storeLocationID string) ([]pattern.WorkPattern, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, store_location_id, work_from, work_to, created_at, updated_at
		FROM work_patterns
		WHERE store_location_id = $1
		ORDER BY work_from ASC, name ASC
	`

	rows, err := q.Query(ctx, query, storeLocationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list work patterns: %w", err)
	}
	defer rows.Close()

	var patterns []pattern.WorkPattern
	for rows.Next() {
		var p pattern.WorkPattern
		err := rows.Scan(&p.ID, &p.Name, &p.StoreLocationID, &p.WorkFrom, &p.WorkTo, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work pattern: %w", err)
		}
		patterns = append(patterns, p)
	}

	return patterns, rows.Err()
}
