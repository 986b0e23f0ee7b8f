package store

import "time"

// DefaultGeofenceRadiusMeters is applied when a store is registered without
// an explicit tolerance radius.
const DefaultGeofenceRadiusMeters = 150

// StoreLocation is a physical site with GPS coordinates and a circular
// geofence tolerance around them.
type StoreLocation struct {
	ID                   string
	Name                 string
	Address              *string
	Latitude             float64
	Longitude            float64
	GeofenceRadiusMeters int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
