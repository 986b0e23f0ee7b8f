package roster

import (
	"context"
	"time"
)

// RosterRepository defines data access for roster entries. All writes go
// through the ctx-scoped querier so batch submission can run atomically.
type RosterRepository interface {
	// Create inserts a new entry. The unique (employee_id, date) constraint
	// surfaces as ErrDuplicateRosterDate.
	Create(ctx context.Context, entry RosterEntry) (RosterEntry, error)

	GetByID(ctx context.Context, id string) (RosterEntry, error)

	// GetByEmployeeAndDate returns nil (not an error) when no entry exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*RosterEntry, error)

	// GetApprovedForDate returns the approved entry authorizing work on the
	// given date, or nil when none exists.
	GetApprovedForDate(ctx context.Context, employeeID string, date time.Time) (*RosterEntry, error)

	Update(ctx context.Context, entry RosterEntry) error

	Delete(ctx context.Context, id string) error

	// ListByEmployeeAndRange returns entries in [start, end] filtered to the
	// given states, date ascending.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time, states []RosterState) ([]RosterEntry, error)

	// ListByEmployee returns the employee's full history with joined work
	// pattern details, date descending.
	ListByEmployee(ctx context.Context, employeeID string) ([]RosterEntry, error)

	ListByBatchID(ctx context.Context, batchID string) ([]RosterEntry, error)
}

// BatchRepository defines data access for submission batches.
type BatchRepository interface {
	Create(ctx context.Context, batch SubmissionBatch) (SubmissionBatch, error)
	GetByID(ctx context.Context, id string) (SubmissionBatch, error)
	UpdateState(ctx context.Context, id string, state BatchState) error

	// Delete cascades to member roster entries (composition ownership).
	Delete(ctx context.Context, id string) error
}
