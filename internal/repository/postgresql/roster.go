package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kerjahub/roster-backend-go/internal/domain/roster"
	"github.com/kerjahub/roster-backend-go/internal/pkg/database"
)

type rosterRepository struct {
	db *database.DB
}

func NewRosterRepository(db *database.DB) roster.RosterRepository {
	return &rosterRepository{db: db}
}

const rosterColumns = `id, employee_id, date, work_pattern_id, state,
	   rejection_reason, approver_id, batch_id, created_at, updated_at`

func scanRoster(row pgx.Row) (roster.RosterEntry, error) {
	var entry roster.RosterEntry
	err := row.Scan(
		&entry.ID, &entry.EmployeeID, &entry.Date, &entry.WorkPatternID, &entry.State,
		&entry.RejectionReason, &entry.ApproverID, &entry.BatchID, &entry.CreatedAt, &entry.UpdatedAt,
	)
	return entry, err
}

// Create implements roster.RosterRepository. The rosters_employee_date_uniq
// constraint is the safety net against concurrent duplicate submissions; a
// violation surfaces as ErrDuplicateRosterDate.
func (r *rosterRepository) Create(ctx context.Context, entry roster.RosterEntry) (roster.RosterEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO rosters (employee_id, date, work_pattern_id, state, batch_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		entry.EmployeeID,
		entry.Date,
		entry.WorkPatternID,
		entry.State,
		entry.BatchID,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return roster.RosterEntry{}, roster.ErrDuplicateRosterDate
		}
		return roster.RosterEntry{}, fmt.Errorf("failed to create roster entry: %w", err)
	}

	return entry, nil
}

// GetByID implements roster.RosterRepository.
func (r *rosterRepository) GetByID(ctx context.Context, id string) (roster.RosterEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + rosterColumns + ` FROM rosters WHERE id = $1`

	entry, err := scanRoster(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return roster.RosterEntry{}, roster.ErrRosterNotFound
		}
		return roster.RosterEntry{}, fmt.Errorf("failed to get roster entry by ID: %w", err)
	}

	return entry, nil
}

// GetByEmployeeAndDate implements roster.RosterRepository.
func (r *rosterRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*roster.RosterEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + rosterColumns + ` FROM rosters WHERE employee_id = $1 AND date = $2 LIMIT 1`

	entry, err := scanRoster(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no existing roster for this date
		}
		return nil, fmt.Errorf("failed to get roster entry by employee and date: %w", err)
	}

	return &entry, nil
}

// GetApprovedForDate implements roster.RosterRepository.
func (r *rosterRepository) GetApprovedForDate(ctx context.Context, employeeID string, date time.Time) (*roster.RosterEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + rosterColumns + ` FROM rosters
		WHERE employee_id = $1 AND date = $2 AND state = $3
		LIMIT 1`

	entry, err := scanRoster(q.QueryRow(ctx, query, employeeID, date, roster.StateApproved))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get approved roster entry: %w", err)
	}

	return &entry, nil
}

// Update implements roster.RosterRepository.
func (r *rosterRepository) Update(ctx context.Context, entry roster.RosterEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE rosters
		SET work_pattern_id = $2, state = $3, rejection_reason = $4,
			approver_id = $5, batch_id = $6, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		entry.ID,
		entry.WorkPatternID,
		entry.State,
		entry.RejectionReason,
		entry.ApproverID,
		entry.BatchID,
	)
	if err != nil {
		return fmt.Errorf("failed to update roster entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return roster.ErrRosterNotFound
	}

	return nil
}

// Delete implements roster.RosterRepository.
func (r *rosterRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM rosters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete roster entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return roster.ErrRosterNotFound
	}

	return nil
}

// ListByEmployeeAndRange implements roster.RosterRepository.
func (r *rosterRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time, states []roster.RosterState) ([]roster.RosterEntry, error) {
	q := GetQuerier(ctx, r.db)

	stateValues := make([]string, 0, len(states))
	for _, s := range states {
		stateValues = append(stateValues, string(s))
	}

	query := `SELECT ` + rosterColumns + ` FROM rosters
		WHERE employee_id = $1 AND date >= $2 AND date <= $3 AND state = ANY($4)
		ORDER BY date ASC`

	rows, err := q.Query(ctx, query, employeeID, start, end, stateValues)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster entries by range: %w", err)
	}
	defer rows.Close()

	var entries []roster.RosterEntry
	for rows.Next() {
		entry, err := scanRoster(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan roster entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// ListByEmployee implements roster.RosterRepository.
func (r *rosterRepository) ListByEmployee(ctx context.Context, employeeID string) ([]roster.RosterEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT r.id, r.employee_id, r.date, r.work_pattern_id, r.state,
			   r.rejection_reason, r.approver_id, r.batch_id, r.created_at, r.updated_at,
			   p.name AS pattern_name, p.work_from, p.work_to
		FROM rosters r
		LEFT JOIN work_patterns p ON p.id = r.work_pattern_id
		WHERE r.employee_id = $1
		ORDER BY r.date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster entries: %w", err)
	}
	defer rows.Close()

	var entries []roster.RosterEntry
	for rows.Next() {
		var entry roster.RosterEntry
		err := rows.Scan(
			&entry.ID, &entry.EmployeeID, &entry.Date, &entry.WorkPatternID, &entry.State,
			&entry.RejectionReason, &entry.ApproverID, &entry.BatchID, &entry.CreatedAt, &entry.UpdatedAt,
			&entry.PatternName, &entry.WorkFrom, &entry.WorkTo,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan roster entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// ListByBatchID implements roster.RosterRepository.
func (r *rosterRepository) ListByBatchID(ctx context.Context, batchID string) ([]roster.RosterEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + rosterColumns + ` FROM rosters WHERE batch_id = $1 ORDER BY date ASC`

	rows, err := q.Query(ctx, query, batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster entries by batch: %w", err)
	}
	defer rows.Close()

	var entries []roster.RosterEntry
	for rows.Next() {
		entry, err := scanRoster(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan roster entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
