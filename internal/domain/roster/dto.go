package roster

import (
	"github.com/kerjahub/roster-backend-go/internal/pkg/validator"
)

// ScheduleItem is one (date, pattern) pair inside a submission.
type ScheduleItem struct {
	Date          string `json:"date"` // YYYY-MM-DD
	WorkPatternID string `json:"work_pattern_id"`
}

// SubmitRosterRequest is the monthly/batch submission payload.
type SubmitRosterRequest struct {
	EmployeeID string         `json:"-"` // from JWT
	MonthLabel *string        `json:"month_label,omitempty"`
	Schedules  []ScheduleItem `json:"schedules"`
}

func (r *SubmitRosterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(r.Schedules) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "schedules",
			Message: "at least one schedule is required",
		})
	}

	for _, item := range r.Schedules {
		if _, ok := validator.IsValidDate(item.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "schedules",
				Message: "date must be in YYYY-MM-DD format",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SubmitRosterResponse reports what the upsert did per entry. Skipped dates
// already held a requested or approved entry and were left untouched.
type SubmitRosterResponse struct {
	BatchID      string   `json:"batch_id"`
	CreatedIDs   []string `json:"created_ids"`
	UpdatedIDs   []string `json:"updated_ids"`
	SkippedDates []string `json:"skipped_dates"`
}

// RejectRosterRequest carries the supervisor's rejection reason.
type RejectRosterRequest struct {
	ID     string `json:"-"`
	Reason string `json:"reason"`
}

func (r *RejectRosterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "rejection reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// BookedDateResponse is one occupied date in a range query.
type BookedDateResponse struct {
	Date  string `json:"date"`
	State string `json:"state"`
}

// RosterResponse is one history row with joined pattern details.
type RosterResponse struct {
	ID              string   `json:"id"`
	Date            string   `json:"date"`
	State           string   `json:"state"`
	WorkPatternID   string   `json:"work_pattern_id"`
	WorkPatternName *string  `json:"work_pattern_name,omitempty"`
	WorkFrom        *float64 `json:"work_from,omitempty"`
	WorkTo          *float64 `json:"work_to,omitempty"`
	RejectionReason *string  `json:"rejection_reason,omitempty"`
	CreatedAt       string   `json:"created_at"`
}
