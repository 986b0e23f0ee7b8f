package pattern

import "time"

// WorkPattern is a named shift template (start/end clock hours) scoped to one
// store location. Hours are stored as float clock values, e.g. 8.0 for 08:00
// and 14.5 for 14:30.
type WorkPattern struct {
	ID              string
	Name            string
	StoreLocationID string
	WorkFrom        float64
	WorkTo          float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Duration is always derived, never stored.
func (p WorkPattern) Duration() float64 {
	return p.WorkTo - p.WorkFrom
}
