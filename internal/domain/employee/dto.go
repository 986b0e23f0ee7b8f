package employee

// WorkPatternInfo is the pattern portion of a work profile. All fields nil
// when the employee has neither a roster override nor a default pattern.
type WorkPatternInfo struct {
	ID       *string  `json:"id,omitempty"`
	Name     *string  `json:"name,omitempty"`
	WorkFrom *float64 `json:"work_from,omitempty"`
	WorkTo   *float64 `json:"work_to,omitempty"`
}

// StoreLocationInfo is the store portion of a work profile.
type StoreLocationInfo struct {
	ID                   *string  `json:"id,omitempty"`
	Name                 *string  `json:"name,omitempty"`
	Latitude             *float64 `json:"latitude,omitempty"`
	Longitude            *float64 `json:"longitude,omitempty"`
	GeofenceRadiusMeters *int     `json:"geofence_radius_meters,omitempty"`
}

// WorkProfileResponse is the mobile home-screen payload: who the employee
// is and which shift applies today. IsRosterOverride is true when today's
// pattern comes from an approved roster entry rather than the default.
type WorkProfileResponse struct {
	EmployeeName     string            `json:"employee_name"`
	JobTitle         *string           `json:"job_title,omitempty"`
	WorkPattern      WorkPatternInfo   `json:"work_pattern"`
	StoreLocation    StoreLocationInfo `json:"store_location"`
	IsRosterOverride bool              `json:"is_roster_override"`
}

// AvailableShiftResponse is one selectable pattern at the employee's store.
type AvailableShiftResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	WorkFrom float64 `json:"work_from"`
	WorkTo   float64 `json:"work_to"`
}
