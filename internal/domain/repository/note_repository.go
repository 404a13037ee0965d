package repository

import (
	"context"

	"beyondtheory/internal/domain/entity"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	GetByID(ctx context.Context, id string) (*entity.Note, error)
	ListByUserID(ctx context.Context, userID string) ([]*entity.Note, error)
	Update(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id string) error
}
