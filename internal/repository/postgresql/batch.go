package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kerjahub/roster-backend-go/internal/domain/roster"
	"github.com/kerjahub/roster-backend-go/internal/pkg/database"
)

type batchRepository struct {
	db *database.DB
}

func NewBatchRepository(db *database.DB) roster.BatchRepository {
	return &batchRepository{db: db}
}

// Create implements roster.BatchRepository.
func (r *batchRepository) Create(ctx context.Context, batch roster.SubmissionBatch) (roster.SubmissionBatch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO roster_batches (employee_id, submission_month, state)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		batch.EmployeeID,
		batch.SubmissionMonth,
		batch.State,
	).Scan(&batch.ID, &batch.CreatedAt, &batch.UpdatedAt)
	if err != nil {
		return roster.SubmissionBatch{}, fmt.Errorf("failed to create roster batch: %w", err)
	}

	return batch, nil
}

// GetByID implements roster.BatchRepository.
func (r *batchRepository) GetByID(ctx context.Context, id string) (roster.SubmissionBatch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, submission_month, state, created_at, updated_at
		FROM roster_batches
		WHERE id = $1
	`

	var batch roster.SubmissionBatch
	err := q.QueryRow(ctx, query, id).Scan(
		&batch.ID, &batch.EmployeeID, &batch.SubmissionMonth, &batch.State,
		&batch.CreatedAt, &batch.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return roster.SubmissionBatch{}, roster.ErrBatchNotFound
		}
		return roster.SubmissionBatch{}, fmt.Errorf("failed to get roster batch by ID: %w", err)
	}

	return batch, nil
}

// UpdateState implements roster.BatchRepository.
func (r *batchRepository) UpdateState(ctx context.Context, id string, state roster.BatchState) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE roster_batches SET state = $2, updated_at = NOW() WHERE id = $1`

	tag, err := q.Exec(ctx, query, id, state)
	if err != nil {
		return fmt.Errorf("failed to update roster batch state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return roster.ErrBatchNotFound
	}

	return nil
}

// Delete implements roster.BatchRepository. Member roster entries are removed
// by the ON DELETE CASCADE on rosters.batch_id.
func (r *batchRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM roster_batches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete roster batch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return roster.ErrBatchNotFound
	}

	return nil
}
