package profile

import (
	"context"
	"errors"
	"time"

	"github.com/kerjahub/roster-backend-go/internal/domain/employee"
	"github.com/kerjahub/roster-backend-go/internal/domain/master/pattern"
	"github.com/kerjahub/roster-backend-go/internal/domain/master/store"
	"github.com/kerjahub/roster-backend-go/internal/domain/roster"
)

type ProfileServiceImpl struct {
	employee.EmployeeRepository
	roster.RosterRepository
	pattern.WorkPatternRepository
	store.StoreLocationRepository
	now func() time.Time
}

// GetWorkProfile implements employee.ProfileService.
func (s *ProfileServiceImpl) GetWorkProfile(ctx context.Context, employeeID string) (employee.WorkProfileResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return employee.WorkProfileResponse{}, err
	}

	resp := employee.WorkProfileResponse{
		EmployeeName: emp.FullName,
		JobTitle:     emp.JobTitle,
	}

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	// Jadwal yang disetujui untuk hari ini menggantikan pola default.
	patternID := emp.WorkPatternID
	approved, err := s.RosterRepository.GetApprovedForDate(ctx, emp.ID, today)
	if err != nil {
		return employee.WorkProfileResponse{}, err
	}
	if approved != nil {
		patternID = &approved.WorkPatternID
		resp.IsRosterOverride = true
	}

	if patternID != nil {
		p, err := s.WorkPatternRepository.GetByID(ctx, *patternID)
		if err != nil {
			return employee.WorkProfileResponse{}, err
		}
		resp.WorkPattern = employee.WorkPatternInfo{
			ID:       &p.ID,
			Name:     &p.Name,
			WorkFrom: &p.WorkFrom,
			WorkTo:   &p.WorkTo,
		}
	}

	loc, err := s.StoreLocationRepository.GetByEmployeeID(ctx, emp.ID)
	if err != nil {
		// A missing store assignment still yields a usable profile; the
		// location block just stays empty.
		if !errors.Is(err, employee.ErrNoStoreLocation) {
			return employee.WorkProfileResponse{}, err
		}
		return resp, nil
	}

	resp.StoreLocation = employee.StoreLocationInfo{
		ID:                   &loc.ID,
		Name:                 &loc.Name,
		Latitude:             &loc.Latitude,
		Longitude:            &loc.Longitude,
		GeofenceRadiusMeters: &loc.GeofenceRadiusMeters,
	}

	return resp, nil
}

// GetAvailableShifts implements employee.ProfileService.
func (s *ProfileServiceImpl) GetAvailableShifts(ctx context.Context, employeeID string) ([]employee.AvailableShiftResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if emp.StoreLocationID == nil {
		return nil, employee.ErrNoStoreLocation
	}

	patterns, err := s.WorkPatternRepository.GetByStoreLocationID(ctx, *emp.StoreLocationID)
	if err != nil {
		return nil, err
	}

	shifts := make([]employee.AvailableShiftResponse, 0, len(patterns))
	for _, p := range patterns {
		shifts = append(shifts, employee.AvailableShiftResponse{
			ID:       p.ID,
			Name:     p.Name,
			WorkFrom: p.WorkFrom,
			WorkTo:   p.WorkTo,
		})
	}

	return shifts, nil
}

func NewProfileService(
	employeeRepo employee.EmployeeRepository,
	rosterRepo roster.RosterRepository,
	workPatternRepo pattern.WorkPatternRepository,
	storeLocationRepo store.StoreLocationRepository,
) employee.ProfileService {
	return &ProfileServiceImpl{
		EmployeeRepository:      employeeRepo,
		RosterRepository:        rosterRepo,
		WorkPatternRepository:   workPatternRepo,
		StoreLocationRepository: storeLocationRepo,
		now:                     time.Now,
	}
}
