package interfaces

import (
	"context"

	"styledecor/internal/domain/entities"
)

// ServiceFilter narrows catalog listings. Zero MaxPrice means unbounded.
type ServiceFilter struct {
	Search   string
	Category string
	MinPrice float64
	MaxPrice float64
}

// IServiceRepository abstracts DynamoDB persistence for Service.

type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context, f ServiceFilter, q ListQuery) ([]entities.Service, int, error)
	Update(ctx context.Context, s entities.Service) (entities.Service, error)
	Delete(ctx context.Context, id string) (bool, error)
	Categories(ctx context.Context) ([]string, error)
}
