package roster

import (
	"errors"
	"fmt"
)

// Roster domain errors
var (
	ErrRosterNotFound       = errors.New("roster entry not found")
	ErrBatchNotFound        = errors.New("submission batch not found")
	ErrNotRosterOwner       = errors.New("roster entry does not belong to this employee")
	ErrNotBatchOwner        = errors.New("submission batch does not belong to this employee")
	ErrBatchNotCancellable  = errors.New("only a requested batch can be cancelled")
	ErrDuplicateRosterDate  = errors.New("a schedule for this employee on this date already exists")
	ErrNoSchedulesSubmitted = errors.New("no schedules provided")
)

// CancelNotAllowedError is returned when an employee tries to cancel an
// entry that is no longer (or not yet) in the requested state. The current
// state is carried so the caller can show it.
type CancelNotAllowedError struct {
	State RosterState
}

func (e *CancelNotAllowedError) Error() string {
	return fmt.Sprintf("cannot cancel a schedule that is already %q", e.State)
}
