package employee

import "context"

// ProfileService serves the employee self-service profile queries.
type ProfileService interface {
	// GetWorkProfile resolves the pattern that applies today: an approved
	// roster entry for today's date wins over the employee's default.
	GetWorkProfile(ctx context.Context, employeeID string) (WorkProfileResponse, error)

	// GetAvailableShifts lists the patterns at the employee's store; an
	// employee with no store assignment gets ErrNoStoreLocation.
	GetAvailableShifts(ctx context.Context, employeeID string) ([]AvailableShiftResponse, error)
}
