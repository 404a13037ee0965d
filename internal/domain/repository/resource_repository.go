package repository

import (
	"context"

	"beyondtheory/internal/domain/entity"
)

type ResourceRepository interface {
	Create(ctx context.Context, resource *entity.Resource) error
	GetByID(ctx context.Context, id string) (*entity.Resource, error)
	List(ctx context.Context) ([]*entity.Resource, error)
	Delete(ctx context.Context, id string) error
}
