package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/kerjahub/roster-backend-go/internal/domain/attendance"
	"github.com/kerjahub/roster-backend-go/internal/domain/employee"
	"github.com/kerjahub/roster-backend-go/internal/domain/master/pattern"
	"github.com/kerjahub/roster-backend-go/internal/domain/master/store"
	"github.com/kerjahub/roster-backend-go/internal/domain/notification"
	"github.com/kerjahub/roster-backend-go/internal/domain/roster"
	"github.com/kerjahub/roster-backend-go/internal/domain/user"
	"github.com/kerjahub/roster-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Anything unmapped is an
// unexpected failure: the caller gets a generic 500 and the detail stays in
// the server log.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Policy errors carrying data keep their human-readable message.
	var geofenceErr *attendance.OutsideGeofenceError
	if errors.As(err, &geofenceErr) {
		Forbidden(w, geofenceErr.Error())
		return
	}
	var cancelErr *roster.CancelNotAllowedError
	if errors.As(err, &cancelErr) {
		Forbidden(w, cancelErr.Error())
		return
	}

	switch {
	// Roster domain errors
	case errors.Is(err, roster.ErrRosterNotFound):
		NotFound(w, "Roster entry not found")
	case errors.Is(err, roster.ErrBatchNotFound):
		NotFound(w, "Submission batch not found")
	case errors.Is(err, roster.ErrNotRosterOwner):
		Forbidden(w, "This schedule does not belong to you")
	case errors.Is(err, roster.ErrNotBatchOwner):
		Forbidden(w, "This submission batch does not belong to you")
	case errors.Is(err, roster.ErrBatchNotCancellable):
		Forbidden(w, "Only a requested submission batch can be cancelled")
	case errors.Is(err, roster.ErrDuplicateRosterDate):
		Conflict(w, "A schedule already exists for this date")
	case errors.Is(err, roster.ErrNoSchedulesSubmitted):
		BadRequest(w, "No schedules provided", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrNoApprovedSchedule):
		Forbidden(w, "You have no approved work schedule for today")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNotLinked):
		NotFound(w, "No employee record is linked to this account")
	case errors.Is(err, employee.ErrNoStoreLocation):
		BadRequest(w, "Your store location is not registered. Contact your admin", nil)

	// Master data errors
	case errors.Is(err, pattern.ErrWorkPatternNotFound):
		NotFound(w, "Work pattern not found")
	case errors.Is(err, store.ErrStoreLocationNotFound):
		NotFound(w, "Store location not found")

	// User / notification errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing access token")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")
	case errors.Is(err, notification.ErrNotRecipient):
		Forbidden(w, "This notification does not belong to you")

	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
