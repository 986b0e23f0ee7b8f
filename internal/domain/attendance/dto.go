package attendance

import (
	"github.com/kerjahub/roster-backend-go/internal/pkg/validator"
)

// CheckInRequest is the geofenced check-in payload. Photo is raw image
// bytes from the multipart upload; optional.
type CheckInRequest struct {
	EmployeeID string  `json:"employee_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Photo      []byte  `json:"-"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(r.Photo) > 10<<20 { // 10MB
		errs = append(errs, validator.ValidationError{
			Field:   "photo",
			Message: "check-in photo must not exceed 10MB",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CheckInResponse confirms the recorded session.
type CheckInResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	CheckInTime    string  `json:"check_in_time"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	DistanceMeters float64 `json:"distance_meters"`
}

// DailyHoursRequest is the worked-hours report query.
type DailyHoursRequest struct {
	EmployeeID string `json:"-"`
	StartDate  string `json:"start_date"` // YYYY-MM-DD, inclusive
	EndDate    string `json:"end_date"`   // YYYY-MM-DD, inclusive
}

func (r *DailyHoursRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DayDetail is one calendar day in the report; zero-hour days included.
type DayDetail struct {
	Date   string    `json:"date"`
	Hours  float64   `json:"hours"`
	Status DayStatus `json:"status"`
}

// DailyHoursResponse is the reconciled report over the whole range.
type DailyHoursResponse struct {
	TotalHours    float64     `json:"total_hours"`
	TotalOvertime float64     `json:"total_overtime"`
	Details       []DayDetail `json:"details"`
}
