package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kerjahub/roster-backend-go/internal/domain/attendance"
	"github.com/kerjahub/roster-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.CheckIn, &att.CheckOut,
		&att.CheckInLatitude, &att.CheckInLongitude, &att.CheckInPhoto,
		&att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (employee_id, check_in, check_in_latitude, check_in_longitude, check_in_photo)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID,
		att.CheckIn,
		att.CheckInLatitude,
		att.CheckInLongitude,
		att.CheckInPhoto,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// ListByEmployeeAndRange implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, check_in, check_out,
			   check_in_latitude, check_in_longitude, check_in_photo,
			   created_at, updated_at
		FROM attendances
		WHERE employee_id = $1 AND check_in >= $2 AND check_in < $3
		ORDER BY check_in ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	return records, rows.Err()
}

// GetStaleOpenSessions implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetStaleOpenSessions(ctx context.Context, cutoff time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, check_in, check_out,
			   check_in_latitude, check_in_longitude, check_in_photo,
			   created_at, updated_at
		FROM attendances
		WHERE check_out IS NULL AND check_in < $1
		ORDER BY check_in ASC
	`

	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale open sessions: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	return records, rows.Err()
}

// SetCheckOut implements attendance.AttendanceRepository. The check_out IS
// NULL guard keeps the sweep from rewriting a record the employee already
// closed between the select and the update.
func (r *attendanceRepository) SetCheckOut(ctx context.Context, id string, checkOut time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_out = $2, updated_at = NOW()
		WHERE id = $1 AND check_out IS NULL
	`

	tag, err := q.Exec(ctx, query, id, checkOut)
	if err != nil {
		return fmt.Errorf("failed to set check out: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}
