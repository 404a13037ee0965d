package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"beyondtheory/internal/usecase"
	"beyondtheory/pkg/response"
)

type TodoHandler struct {
	todoUseCase *usecase.TodoUseCase
}

func NewTodoHandler(todoUseCase *usecase.TodoUseCase) *TodoHandler {
	return &TodoHandler{
		todoUseCase: todoUseCase,
	}
}

type createTodoRequest struct {
	Title string `json:"title" validate:"required"`
}

type updateTodoRequest struct {
	Title *string `json:"title"`
	Done  *bool   `json:"done"`
}

func (h *TodoHandler) ListTodos(c echo.Context) error {
	userID := c.Get("uid").(string)

	todos, err := h.todoUseCase.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, todos)
}

func (h *TodoHandler) CreateTodo(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req createTodoRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	todo, err := h.todoUseCase.Create(c.Request().Context(), userID, req.Title)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, todo)
}

func (h *TodoHandler) UpdateTodo(c echo.Context) error {
	userID := c.Get("uid").(string)
	todoID := c.Param("id")

	var req updateTodoRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	todo, err := h.todoUseCase.Update(c.Request().Context(), userID, todoID, usecase.UpdateTodoInput{
		Title: req.Title,
		Done:  req.Done,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, todo)
}

func (h *TodoHandler) DeleteTodo(c echo.Context) error {
	userID := c.Get("uid").(string)
	todoID := c.Param("id")

	if err := h.todoUseCase.Delete(c.Request().Context(), userID, todoID); err != nil {
		return response.Error(c, err)
	}

	return c.NoContent(http.StatusOK)
}
