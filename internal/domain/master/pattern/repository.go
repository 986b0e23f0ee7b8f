package pattern

import "context"

type WorkPatternRepository interface {
	Create(ctx context.Context, p WorkPattern) (WorkPattern, error)
	GetByID(ctx context.Context, id string) (WorkPattern, error)
	GetByStoreLocationID(ctx context.Context, storeLocationID string) ([]WorkPattern, error)
}
