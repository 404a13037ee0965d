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

type firestoreGoalRepository struct {
	client *firestore.Client
}

func NewFirestoreGoalRepository(client *firestore.Client) repository.GoalRepository {
	return &firestoreGoalRepository{client: client}
}

func (r *firestoreGoalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	if goal.ID == "" {
		goal.ID = uuid.New().String()
	}

	now := time.Now()
	goal.CreatedAt = now
	goal.UpdatedAt = now

	_, err := r.client.Collection("goals").Doc(goal.ID).Set(ctx, goal)
	if err != nil {
		return errors.Internal("Failed to create goal", err)
	}
	return nil
}

func (r *firestoreGoalRepository) GetByID(ctx context.Context, id string) (*entity.Goal, error) {
	doc, err := r.client.Collection("goals").Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Goal", err)
		}
		return nil, errors.Internal("Failed to get goal", err)
	}

	var goal entity.Goal
	if err := doc.DataTo(&goal); err != nil {
		return nil, errors.Internal("Failed to parse goal data", err)
	}
	return &goal, nil
}

func (r *firestoreGoalRepository) ListByUserID(ctx context.Context, userID string) ([]*entity.Goal, error) {
	query := r.client.Collection("goals").Where("userId", "==", userID).OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	var goals []*entity.Goal

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate goals", err)
		}

		var goal entity.Goal
		if err := doc.DataTo(&goal); err != nil {
			continue // Skip malformed documents
		}
		goals = append(goals, &goal)
	}

	return goals, nil
}

func (r *firestoreGoalRepository) Update(ctx context.Context, goal *entity.Goal) error {
	goal.UpdatedAt = time.Now()

	_, err := r.client.Collection("goals").Doc(goal.ID).Set(ctx, goal)
	if err != nil {
		return errors.Internal("Failed to update goal", err)
	}
	return nil
}

func (r *firestoreGoalRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("goals").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete goal", err)
	}
	return nil
}
