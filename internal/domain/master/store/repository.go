package store

import "context"

type StoreLocationRepository interface {
	Create(ctx context.Context, s StoreLocation) (StoreLocation, error)
	GetByID(ctx context.Context, id string) (StoreLocation, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (StoreLocation, error)
}
