package master

import (
	"context"

	"github.com/kerjahub/roster-backend-go/internal/domain/master/pattern"
	"github.com/kerjahub/roster-backend-go/internal/domain/master/store"
)

// MasterService manages the catalog data the roster and attendance flows
// key on: work patterns and store locations.
type MasterService interface {
	// CreateWorkPattern registers a shift template under an existing store.
	// Overnight templates (work_to <= work_from) are rejected.
	CreateWorkPattern(ctx context.Context, req pattern.CreateWorkPatternRequest) (pattern.WorkPatternResponse, error)

	// CreateStoreLocation registers a physical site. A missing or
	// non-positive geofence radius falls back to the default tolerance.
	CreateStoreLocation(ctx context.Context, req store.CreateStoreLocationRequest) (store.StoreLocationResponse, error)
}

type masterServiceImpl struct {
	patternRepo pattern.WorkPatternRepository
	storeRepo   store.StoreLocationRepository
}

func NewMasterService(
	patternRepo pattern.WorkPatternRepository,
	storeRepo store.StoreLocationRepository,
) MasterService {
	return &masterServiceImpl{
		patternRepo: patternRepo,
		storeRepo:   storeRepo,
	}
}

// CreateWorkPattern implements MasterService.
func (s *masterServiceImpl) CreateWorkPattern(ctx context.Context, req pattern.CreateWorkPatternRequest) (pattern.WorkPatternResponse, error) {
	if err := req.Validate(); err != nil {
		return pattern.WorkPatternResponse{}, err
	}

	// The owning store must exist before a pattern can reference it.
	if _, err := s.storeRepo.GetByID(ctx, req.StoreLocationID); err != nil {
		return pattern.WorkPatternResponse{}, err
	}

	created, err := s.patternRepo.Create(ctx, pattern.WorkPattern{
		Name:            req.Name,
		StoreLocationID: req.StoreLocationID,
		WorkFrom:        req.WorkFrom,
		WorkTo:          req.WorkTo,
	})
	if err != nil {
		return pattern.WorkPatternResponse{}, err
	}

	return pattern.ToResponse(created), nil
}

// CreateStoreLocation implements MasterService.
func (s *masterServiceImpl) CreateStoreLocation(ctx context.Context, req store.CreateStoreLocationRequest) (store.StoreLocationResponse, error) {
	if err := req.Validate(); err != nil {
		return store.StoreLocationResponse{}, err
	}

	radius := req.GeofenceRadiusMeters
	if radius <= 0 {
		radius = store.DefaultGeofenceRadiusMeters
	}

	created, err := s.storeRepo.Create(ctx, store.StoreLocation{
		Name:                 req.Name,
		Address:              req.Address,
		Latitude:             req.Latitude,
		Longitude:            req.Longitude,
		GeofenceRadiusMeters: radius,
	})
	if err != nil {
		return store.StoreLocationResponse{}, err
	}

	return store.ToResponse(created), nil
}
