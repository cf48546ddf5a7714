package interfaces

import (
	"context"

	"workbee/internal/domain/entities"
)

// IServiceRepository abstracts DynamoDB persistence for Service.
//
// ListAvailable returns every listing with availability=available and
// is_active=true; text/category/location filtering is applied by the catalog
// use case on top of it.

type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	ListAvailable(ctx context.Context) ([]entities.Service, error)
	ListByWorkerID(ctx context.Context, workerID string) ([]entities.Service, error)
	Save(ctx context.Context, s entities.Service) (entities.Service, error)
}
