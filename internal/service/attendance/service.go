package attendance

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/kerjahub/roster-backend-go/internal/domain/attendance"
	"github.com/kerjahub/roster-backend-go/internal/domain/employee"
	"github.com/kerjahub/roster-backend-go/internal/domain/master/pattern"
	"github.com/kerjahub/roster-backend-go/internal/domain/master/store"
	"github.com/kerjahub/roster-backend-go/internal/domain/roster"
	"github.com/kerjahub/roster-backend-go/internal/pkg/utils"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	roster.RosterRepository
	pattern.WorkPatternRepository
	store.StoreLocationRepository
	now func() time.Time
}

const dateLayout = "2006-01-02"

// CheckIn implements attendance.AttendanceService. Checks run in a fixed
// order and short-circuit: input, employee, today's approved schedule, store
// assignment, geofence. A distance exactly at the radius is accepted.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.CheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckInResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	approved, err := s.RosterRepository.GetApprovedForDate(ctx, emp.ID, today)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}
	if approved == nil {
		return attendance.CheckInResponse{}, attendance.ErrNoApprovedSchedule
	}

	loc, err := s.StoreLocationRepository.GetByEmployeeID(ctx, emp.ID)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	distance := utils.GeodesicDistance(req.Latitude, req.Longitude, loc.Latitude, loc.Longitude)
	if distance > float64(loc.GeofenceRadiusMeters) {
		return attendance.CheckInResponse{}, &attendance.OutsideGeofenceError{
			DistanceMeters: distance,
			RadiusMeters:   loc.GeofenceRadiusMeters,
		}
	}

	var photo *string
	if len(req.Photo) > 0 {
		encoded := base64.StdEncoding.EncodeToString(req.Photo)
		photo = &encoded
	}

	record, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		EmployeeID:       emp.ID,
		CheckIn:          now,
		CheckInLatitude:  req.Latitude,
		CheckInLongitude: req.Longitude,
		CheckInPhoto:     photo,
	})
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	return attendance.CheckInResponse{
		ID:             record.ID,
		EmployeeID:     record.EmployeeID,
		CheckInTime:    record.CheckIn.Format("2006-01-02 15:04:05"),
		Latitude:       record.CheckInLatitude,
		Longitude:      record.CheckInLongitude,
		DistanceMeters: distance,
	}, nil
}

// GetDailyHours implements attendance.AttendanceService. The report carries
// one row per calendar day in the inclusive range, zero-hour days included;
// overtime only accrues on days the employee actually worked.
func (s *AttendanceServiceImpl) GetDailyHours(ctx context.Context, req attendance.DailyHoursRequest) (attendance.DailyHoursResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DailyHoursResponse{}, err
	}

	start, _ := time.Parse(dateLayout, req.StartDate)
	end, _ := time.Parse(dateLayout, req.EndDate)

	records, err := s.AttendanceRepository.ListByEmployeeAndRange(ctx, req.EmployeeID, start, end.AddDate(0, 0, 1))
	if err != nil {
		return attendance.DailyHoursResponse{}, err
	}

	hoursByDay := make(map[string]float64)
	for _, record := range records {
		day := record.CheckIn.UTC().Format(dateLayout)
		hoursByDay[day] += record.WorkedHours()
	}

	approvedEntries, err := s.RosterRepository.ListByEmployeeAndRange(ctx, req.EmployeeID, start, end,
		[]roster.RosterState{roster.StateApproved})
	if err != nil {
		return attendance.DailyHoursResponse{}, err
	}

	standardByDay := make(map[string]float64)
	patternCache := make(map[string]pattern.WorkPattern)
	for _, entry := range approvedEntries {
		p, ok := patternCache[entry.WorkPatternID]
		if !ok {
			p, err = s.WorkPatternRepository.GetByID(ctx, entry.WorkPatternID)
			if err != nil {
				return attendance.DailyHoursResponse{}, err
			}
			patternCache[entry.WorkPatternID] = p
		}
		standardByDay[entry.Date.Format(dateLayout)] = p.Duration()
	}

	var resp attendance.DailyHoursResponse
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format(dateLayout)
		hours := hoursByDay[key]

		status := attendance.DayAbsent
		if hours > 0 {
			status = attendance.DayWorked
		}

		standard, ok := standardByDay[key]
		if !ok {
			standard = attendance.DefaultStandardHours
		}

		resp.TotalHours += hours
		if status == attendance.DayWorked && hours > standard {
			resp.TotalOvertime += hours - standard
		}

		resp.Details = append(resp.Details, attendance.DayDetail{
			Date:   key,
			Hours:  hours,
			Status: status,
		})
	}

	return resp, nil
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	rosterRepo roster.RosterRepository,
	workPatternRepo pattern.WorkPatternRepository,
	storeLocationRepo store.StoreLocationRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository:    attendanceRepo,
		EmployeeRepository:      employeeRepo,
		RosterRepository:        rosterRepo,
		WorkPatternRepository:   workPatternRepo,
		StoreLocationRepository: storeLocationRepo,
		now:                     time.Now,
	}
}
