package repository

import (
	"context"

	"beyondtheory/internal/domain/entity"
)

type TodoRepository interface {
	Create(ctx context.Context, todo *entity.Todo) error
	GetByID(ctx context.Context, id string) (*entity.Todo, error)
	ListByUserID(ctx context.Context, userID string) ([]*entity.Todo, error)
	Update(ctx context.Context, todo *entity.Todo) error
	Delete(ctx context.Context, id string) error
}
