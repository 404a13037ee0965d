package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"beyondtheory/internal/domain/entity"
	"beyondtheory/internal/domain/repository"
	"beyondtheory/pkg/errors"
)

type firestoreTodoRepository struct {
	client *firestore.Client
}

func NewFirestoreTodoRepository(client *firestore.Client) repository.TodoRepository {
	return &firestoreTodoRepository{client: client}
}

func (r *firestoreTodoRepository) Create(ctx context.Context, todo *entity.Todo) error {
	if todo.ID == "" {
		todo.ID = uuid.New().String()
	}

	now := time.Now()
	todo.CreatedAt = now
	todo.UpdatedAt = now

	_, err := r.client.Collection("todos").Doc(todo.ID).Set(ctx, todo)
	if err != nil {
		return errors.Internal("Failed to create todo", err)
	}
	return nil
}

func (r *firestoreTodoRepository) GetByID(ctx context.Context, id string) (*entity.Todo, error) {
	doc, err := r.client.Collection("todos").Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Todo", err)
		}
		return nil, errors.Internal("Failed to get todo", err)
	}

	var todo entity.Todo
	if err := doc.DataTo(&todo); err != nil {
		return nil, errors.Internal("Failed to parse todo data", err)
	}
	return &todo, nil
}

func (r *firestoreTodoRepository) ListByUserID(ctx context.Context, userID string) ([]*entity.Todo, error) {
	query := r.client.Collection("todos").Where("userId", "==", userID).OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	var todos []*entity.Todo

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate todos", err)
		}

		var todo entity.Todo
		if err := doc.DataTo(&todo); err != nil {
			continue // Skip malformed documents
		}
		todos = append(todos, &todo)
	}

	return todos, nil
}

func (r *firestoreTodoRepository) Update(ctx context.Context, todo *entity.Todo) error {
	todo.UpdatedAt = time.Now()

	_, err := r.client.Collection("todos").Doc(todo.ID).Set(ctx, todo)
	if err != nil {
		return errors.Internal("Failed to update todo", err)
	}
	return nil
}

func (r *firestoreTodoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("todos").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete todo", err)
	}
	return nil
}
