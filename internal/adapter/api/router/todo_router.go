package router

import (
	"github.com/labstack/echo/v4"

	"beyondtheory/internal/adapter/api/handler"
	"beyondtheory/internal/adapter/api/middleware"
)

func SetupTodoRouter(e *echo.Echo, todoHandler *handler.TodoHandler, authMiddleware *middleware.AuthMiddleware) {
	todoGroup := e.Group("/v1/todos")
	todoGroup.Use(authMiddleware.Authenticate)

	todoGroup.GET("", todoHandler.ListTodos)
	todoGroup.POST("", todoHandler.CreateTodo)
	todoGroup.PATCH("/:id", todoHandler.UpdateTodo)
	todoGroup.DELETE("/:id", todoHandler.DeleteTodo)
}
