package roster

import "time"

// RosterState is the lifecycle state of a single roster entry.
type RosterState string

const (
	StateDraft     RosterState = "draft"
	StateRequested RosterState = "requested"
	StateApproved  RosterState = "approved"
	StateRejected  RosterState = "rejected"
)

// BatchState is the coarse rollup state of a submission batch. It is set
// explicitly by the batch approve/reject actions, not derived from member
// entries, so the two can diverge.
type BatchState string

const (
	BatchRequested BatchState = "requested"
	BatchApproved  BatchState = "approved"
	BatchRejected  BatchState = "rejected"
)

// RosterEntry is one employee's shift assignment for one calendar date.
// At most one entry may exist per (employee, date); the database enforces
// this with a unique constraint so concurrent submissions cannot race past
// an application-level check.
type RosterEntry struct {
	ID              string
	EmployeeID      string
	Date            time.Time // calendar date, midnight UTC
	WorkPatternID   string
	State           RosterState
	RejectionReason *string
	ApproverID      *string
	BatchID         *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined pattern details for history responses
	PatternName *string
	WorkFrom    *float64
	WorkTo      *float64
}

// SubmissionBatch groups the roster entries created in one submission. It
// owns its members: deleting a batch cascades to the entries linked to it.
type SubmissionBatch struct {
	ID              string
	EmployeeID      string
	SubmissionMonth *string // free-text label, e.g. "Oktober 2025"
	State           BatchState
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
