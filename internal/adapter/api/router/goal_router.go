package router

import (
	"github.com/labstack/echo/v4"

	"beyondtheory/internal/adapter/api/handler"
	"beyondtheory/internal/adapter/api/middleware"
)

func SetupGoalRouter(e *echo.Echo, goalHandler *handler.GoalHandler, authMiddleware *middleware.AuthMiddleware) {
	goalGroup := e.Group("/v1/goals")
	goalGroup.Use(authMiddleware.Authenticate)

	goalGroup.GET("", goalHandler.ListGoals)
	goalGroup.POST("", goalHandler.CreateGoal)
	goalGroup.PATCH("/:id", goalHandler.UpdateGoal)
	goalGroup.DELETE("/:id", goalHandler.DeleteGoal)
}
