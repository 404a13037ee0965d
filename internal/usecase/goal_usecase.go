package usecase

import (
	"context"
	"strings"
	"time"

	"beyondtheory/internal/domain/entity"
	"beyondtheory/internal/domain/repository"
	"beyondtheory/pkg/errors"
)

type GoalUseCase struct {
	goalRepo repository.GoalRepository
}

func NewGoalUseCase(goalRepo repository.GoalRepository) *GoalUseCase {
	return &GoalUseCase{
		goalRepo: goalRepo,
	}
}

type CreateGoalInput struct {
	Title       string
	Description string
	TargetDate  time.Time
}

func (uc *GoalUseCase) Create(ctx context.Context, userID string, input CreateGoalInput) (*entity.Goal, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, errors.BadRequest("Title must not be empty", nil)
	}

	goal := &entity.Goal{
		UserID:      userID,
		Title:       title,
		Description: input.Description,
		TargetDate:  input.TargetDate,
	}

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

func (uc *GoalUseCase) ListForUser(ctx context.Context, userID string) ([]*entity.Goal, error) {
	return uc.goalRepo.ListByUserID(ctx, userID)
}

type UpdateGoalInput struct {
	Title       *string
	Description *string
	TargetDate  *time.Time
	Completed   *bool
}

func (uc *GoalUseCase) Update(ctx context.Context, userID, goalID string, input UpdateGoalInput) (*entity.Goal, error) {
	goal, err := uc.goalRepo.GetByID(ctx, goalID)
	if err != nil {
		return nil, err
	}

	if goal.UserID != userID {
		return nil, errors.Forbidden("You can only modify your own goals", nil)
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, errors.BadRequest("Title must not be empty", nil)
		}
		goal.Title = title
	}
	if input.Description != nil {
		goal.Description = *input.Description
	}
	if input.TargetDate != nil {
		goal.TargetDate = *input.TargetDate
	}
	if input.Completed != nil {
		goal.Completed = *input.Completed
	}

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

func (uc *GoalUseCase) Delete(ctx context.Context, userID, goalID string) error {
	goal, err := uc.goalRepo.GetByID(ctx, goalID)
	if err != nil {
		return err
	}

	if goal.UserID != userID {
		return errors.Forbidden("You can only delete your own goals", nil)
	}

	return uc.goalRepo.Delete(ctx, goalID)
}
