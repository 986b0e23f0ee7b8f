package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kerjahub/roster-backend-go/internal/domain/employee"
	"github.com/kerjahub/roster-backend-go/internal/domain/master/store"
	"github.com/kerjahub/roster-backend-go/internal/pkg/database"
)

type storeLocationRepository struct {
	db *database.DB
}

func NewStoreLocationRepository(db *database.DB) store.StoreLocationRepository {
	return &storeLocationRepository{db: db}
}

// Create implements store.StoreLocationRepository.
func (r *storeLocationRepository) Create(ctx context.Context, s store.StoreLocation) (store.StoreLocation, error) {
	q := GetQuerier(ctx, r.db)

	if s.GeofenceRadiusMeters <= 0 {
		s.GeofenceRadiusMeters = store.DefaultGeofenceRadiusMeters
	}

	query := `
		INSERT INTO store_locations (name, address, latitude, longitude, geofence_radius_meters)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.Name,
		s.Address,
		s.Latitude,
		s.Longitude,
		s.GeofenceRadiusMeters,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return store.StoreLocation{}, fmt.Errorf("failed to create store location: %w", err)
	}

	return s, nil
}

// GetByID implements store.StoreLocationRepository.
func (r *storeLocationRepository) GetByID(ctx context.Context, id string) (store.StoreLocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, address, latitude, longitude, geofence_radius_meters, created_at, updated_at
		FROM store_locations
		WHERE id = $1
	`

	var s store.StoreLocation
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Address, &s.Latitude, &s.Longitude,
		&s.GeofenceRadiusMeters, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.StoreLocation{}, store.ErrStoreLocationNotFound
		}
		return store.StoreLocation{}, fmt.Errorf("failed to get store location by ID: %w", err)
	}

	return s, nil
}

// GetByEmployeeID implements store.StoreLocationRepository. An employee with
// no assigned store surfaces as employee.ErrNoStoreLocation so check-in can
// report the real cause instead of a generic not-found.
func (r *storeLocationRepository) GetByEmployeeID(ctx context.Context, employeeID string) (store.StoreLocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.name, s.address, s.latitude, s.longitude,
			   s.geofence_radius_meters, s.created_at, s.updated_at
		FROM store_locations s
		JOIN employees e ON e.store_location_id = s.id
		WHERE e.id = $1
	`

	var s store.StoreLocation
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&s.ID, &s.Name, &s.Address, &s.Latitude, &s.Longitude,
		&s.GeofenceRadiusMeters, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.StoreLocation{}, employee.ErrNoStoreLocation
		}
		return store.StoreLocation{}, fmt.Errorf("failed to get store location by employee: %w", err)
	}

	return s, nil
}
