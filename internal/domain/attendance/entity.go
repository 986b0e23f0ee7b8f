package attendance

import "time"

// Attendance is one recorded work session. Created only by a successful
// geofenced check-in; CheckOut stays nil until the employee checks out or
// the auto-checkout sweep closes the record.
type Attendance struct {
	ID               string
	EmployeeID       string
	CheckIn          time.Time
	CheckOut         *time.Time
	CheckInLatitude  float64
	CheckInLongitude float64
	CheckInPhoto     *string // base64-encoded image, optional
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// WorkedHours is the session length in hours; an open session counts as 0.
func (a Attendance) WorkedHours() float64 {
	if a.CheckOut == nil {
		return 0
	}
	return a.CheckOut.Sub(a.CheckIn).Hours()
}

// DayStatus classifies one calendar day in a daily-hours report.
type DayStatus string

const (
	DayWorked DayStatus = "worked"
	DayAbsent DayStatus = "absent"
)

// DefaultStandardHours applies on days without an approved roster pattern.
const DefaultStandardHours = 8.0
