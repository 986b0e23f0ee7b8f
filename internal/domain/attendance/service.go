package attendance

import "context"

// AttendanceService covers the geofenced check-in gate and the daily
// hours/overtime report.
type AttendanceService interface {
	// CheckIn validates the request in order: input completeness, employee
	// existence, an approved roster entry for today, an assigned store
	// location, and finally geodesic distance against the store's geofence
	// radius. The first failing check rejects the whole attempt.
	CheckIn(ctx context.Context, req CheckInRequest) (CheckInResponse, error)

	// GetDailyHours reconciles recorded attendance against approved rosters
	// over an inclusive date range, one detail row per calendar day.
	GetDailyHours(ctx context.Context, req DailyHoursRequest) (DailyHoursResponse, error)
}
