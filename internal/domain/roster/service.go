package roster

import "context"

// RosterService is the roster lifecycle: batch submission, supervisor
// decisions, and employee self-service queries.
type RosterService interface {
	// SubmitRoster runs the batch submission upsert atomically: either the
	// batch record and every created/updated entry commit together, or
	// nothing does.
	SubmitRoster(ctx context.Context, req SubmitRosterRequest) (SubmitRosterResponse, error)

	// Approve moves an entry to approved, stamps the approver, and queues a
	// push notification to the employee. Notification failure never fails
	// the approval.
	Approve(ctx context.Context, rosterID string, approverID string) error

	// Reject moves an entry to rejected with a reason, stamps the approver,
	// and queues a notification carrying the reason text.
	Reject(ctx context.Context, req RejectRosterRequest, approverID string) error

	// ResetToDraft clears approver and rejection reason and returns the
	// entry to draft.
	ResetToDraft(ctx context.Context, rosterID string) error

	// CancelByEmployee deletes an entry, permitted only while it is still
	// requested and owned by the calling employee.
	CancelByEmployee(ctx context.Context, rosterID string, employeeID string) error

	// CancelBatchByEmployee deletes a whole submission batch, cascading to
	// its member entries. Permitted only while the batch is still requested
	// and owned by the calling employee.
	CancelBatchByEmployee(ctx context.Context, batchID string, employeeID string) error

	// ApproveBatch approves every member entry (with per-entry notification
	// fan-out) and then marks the batch approved.
	ApproveBatch(ctx context.Context, batchID string, approverID string) error

	// RejectBatch marks only the batch rejected. Member entries keep their
	// states; this asymmetry with ApproveBatch is intentional.
	RejectBatch(ctx context.Context, batchID string) error

	GetBookedDates(ctx context.Context, employeeID string, start, end string) ([]BookedDateResponse, error)

	GetRosterHistory(ctx context.Context, employeeID string) ([]RosterResponse, error)
}
