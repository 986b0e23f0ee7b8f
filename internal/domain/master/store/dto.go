package store

import (
	"github.com/kerjahub/roster-backend-go/internal/pkg/validator"
)

// StoreLocationResponse represents the response structure for a store
// location.
type StoreLocationResponse struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Address              *string `json:"address,omitempty"`
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	GeofenceRadiusMeters int     `json:"geofence_radius_meters"`
}

// CreateStoreLocationRequest represents the request structure for
// registering a store location.
type CreateStoreLocationRequest struct {
	Name                 string  `json:"name"`
	Address              *string `json:"address,omitempty"`
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	GeofenceRadiusMeters int     `json:"geofence_radius_meters"`
}

func (r *CreateStoreLocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.GeofenceRadiusMeters < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "geofence_radius_meters",
			Message: "geofence_radius_meters cannot be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func ToResponse(s StoreLocation) StoreLocationResponse {
	return StoreLocationResponse{
		ID:                   s.ID,
		Name:                 s.Name,
		Address:              s.Address,
		Latitude:             s.Latitude,
		Longitude:            s.Longitude,
		GeofenceRadiusMeters: s.GeofenceRadiusMeters,
	}
}
