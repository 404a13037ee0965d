package repository

import (
	"context"

	"beyondtheory/internal/domain/entity"
)

type GoalRepository interface {
	Create(ctx context.Context, goal *entity.Goal) error
	GetByID(ctx context.Context, id string) (*entity.Goal, error)
	ListByUserID(ctx context.Context, userID string) ([]*entity.Goal, error)
	Update(ctx context.Context, goal *entity.Goal) error
	Delete(ctx context.Context, id string) error
}
