package employee

import "context"

// EmployeeRepository is the directory the core consumes. GetByID returns
// ErrEmployeeNotFound rather than failing loudly; callers decide severity.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
}
