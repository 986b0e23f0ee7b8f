package attendance

import (
	"errors"
	"fmt"
)

// Attendance domain errors
var (
	ErrNoApprovedSchedule = errors.New("no approved work schedule for today")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)

// OutsideGeofenceError carries the measured distance so the rejection
// message can tell the employee how far off they are.
type OutsideGeofenceError struct {
	DistanceMeters float64
	RadiusMeters   int
}

func (e *OutsideGeofenceError) Error() string {
	return fmt.Sprintf("you are %d meters from your work location (allowed: %d meters)",
		int(e.DistanceMeters), e.RadiusMeters)
}
