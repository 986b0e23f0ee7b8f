package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// ListByEmployeeAndRange returns records whose check-in falls inside
	// [start, end), check-in ascending.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)

	// GetStaleOpenSessions returns records checked in before the cutoff
	// with check_out still unset.
	GetStaleOpenSessions(ctx context.Context, cutoff time.Time) ([]Attendance, error)

	// SetCheckOut closes a record. Never touches an already-closed one.
	SetCheckOut(ctx context.Context, id string, checkOut time.Time) error
}
