package employee

import "time"

// Employee is the slim directory record the roster and attendance flows work
// with. WorkPatternID and StoreLocationID are the employee's defaults; an
// approved roster entry overrides the pattern for its date.
type Employee struct {
	ID              string
	UserID          *string
	FullName        string
	JobTitle        *string
	WorkPatternID   *string
	StoreLocationID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
