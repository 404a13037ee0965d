package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"beyondtheory/internal/usecase"
	"beyondtheory/pkg/errors"
	"beyondtheory/pkg/response"
)

type GoalHandler struct {
	goalUseCase *usecase.GoalUseCase
}

func NewGoalHandler(goalUseCase *usecase.GoalUseCase) *GoalHandler {
	return &GoalHandler{
		goalUseCase: goalUseCase,
	}
}

type createGoalRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	TargetDate  string `json:"target_date"`
}

type updateGoalRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	TargetDate  *string `json:"target_date"`
	Completed   *bool   `json:"completed"`
}

func (h *GoalHandler) ListGoals(c echo.Context) error {
	userID := c.Get("uid").(string)

	goals, err := h.goalUseCase.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, goals)
}

func (h *GoalHandler) CreateGoal(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req createGoalRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	var targetDate time.Time
	if req.TargetDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.TargetDate)
		if err != nil {
			return response.Error(c, errors.BadRequest("target_date must be an RFC3339 timestamp", err))
		}
		targetDate = parsed
	}

	goal, err := h.goalUseCase.Create(c.Request().Context(), userID, usecase.CreateGoalInput{
		Title:       req.Title,
		Description: req.Description,
		TargetDate:  targetDate,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, goal)
}

func (h *GoalHandler) UpdateGoal(c echo.Context) error {
	userID := c.Get("uid").(string)
	goalID := c.Param("id")

	var req updateGoalRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	input := usecase.UpdateGoalInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}
	if req.TargetDate != nil {
		parsed, err := time.Parse(time.RFC3339, *req.TargetDate)
		if err != nil {
			return response.Error(c, errors.BadRequest("target_date must be an RFC3339 timestamp", err))
		}
		input.TargetDate = &parsed
	}

	goal, err := h.goalUseCase.Update(c.Request().Context(), userID, goalID, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, goal)
}

func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	userID := c.Get("uid").(string)
	goalID := c.Param("id")

	if err := h.goalUseCase.Delete(c.Request().Context(), userID, goalID); err != nil {
		return response.Error(c, err)
	}

	return c.NoContent(http.StatusOK)
}
