package handler

import (
	"github.com/labstack/echo/v4"

	"beyondtheory/internal/usecase"
	"beyondtheory/pkg/response"
)

type AssistantHandler struct {
	assistantUseCase *usecase.AssistantUseCase
}

func NewAssistantHandler(assistantUseCase *usecase.AssistantUseCase) *AssistantHandler {
	return &AssistantHandler{
		assistantUseCase: assistantUseCase,
	}
}

type askRequest struct {
	Question string `json:"question" validate:"required"`
}

func (h *AssistantHandler) Ask(c echo.Context) error {
	var req askRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	answer, err := h.assistantUseCase.Ask(c.Request().Context(), req.Question)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, answer)
}
