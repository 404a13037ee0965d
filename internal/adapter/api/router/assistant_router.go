package router

import (
	"github.com/labstack/echo/v4"

	"beyondtheory/internal/adapter/api/handler"
	"beyondtheory/internal/adapter/api/middleware"
)

func SetupAssistantRouter(e *echo.Echo, assistantHandler *handler.AssistantHandler, authMiddleware *middleware.AuthMiddleware) {
	assistantGroup := e.Group("/v1/assistant")
	assistantGroup.Use(authMiddleware.Authenticate)

	assistantGroup.POST("/ask", assistantHandler.Ask)
}
