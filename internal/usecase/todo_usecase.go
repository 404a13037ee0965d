package usecase

import (
	"context"
	"strings"

	"beyondtheory/internal/domain/entity"
	"beyondtheory/internal/domain/repository"
	"beyondtheory/pkg/errors"
)

type TodoUseCase struct {
	todoRepo repository.TodoRepository
}

func NewTodoUseCase(todoRepo repository.TodoRepository) *TodoUseCase {
	return &TodoUseCase{
		todoRepo: todoRepo,
	}
}

func (uc *TodoUseCase) Create(ctx context.Context, userID, title string) (*entity.Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.BadRequest("Title must not be empty", nil)
	}

	todo := &entity.Todo{
		UserID: userID,
		Title:  title,
	}

	if err := uc.todoRepo.Create(ctx, todo); err != nil {
		return nil, err
	}

	return todo, nil
}

func (uc *TodoUseCase) ListForUser(ctx context.Context, userID string) ([]*entity.Todo, error) {
	return uc.todoRepo.ListByUserID(ctx, userID)
}

type UpdateTodoInput struct {
	Title *string
	Done  *bool
}

func (uc *TodoUseCase) Update(ctx context.Context, userID, todoID string, input UpdateTodoInput) (*entity.Todo, error) {
	todo, err := uc.todoRepo.GetByID(ctx, todoID)
	if err != nil {
		return nil, err
	}

	if todo.UserID != userID {
		return nil, errors.Forbidden("You can only modify your own todos", nil)
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, errors.BadRequest("Title must not be empty", nil)
		}
		todo.Title = title
	}
	if input.Done != nil {
		todo.Done = *input.Done
	}

	if err := uc.todoRepo.Update(ctx, todo); err != nil {
		return nil, err
	}

	return todo, nil
}

func (uc *TodoUseCase) Delete(ctx context.Context, userID, todoID string) error {
	todo, err := uc.todoRepo.GetByID(ctx, todoID)
	if err != nil {
		return err
	}

	if todo.UserID != userID {
		return errors.Forbidden("You can only delete your own todos", nil)
	}

	return uc.todoRepo.Delete(ctx, todoID)
}
