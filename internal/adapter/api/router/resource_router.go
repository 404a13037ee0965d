package router

import (
	"github.com/labstack/echo/v4"

	"beyondtheory/internal/adapter/api/handler"
	"beyondtheory/internal/adapter/api/middleware"
)

func SetupResourceRouter(e *echo.Echo, resourceHandler *handler.ResourceHandler, authMiddleware *middleware.AuthMiddleware) {
	resourceGroup := e.Group("/v1/resources")
	resourceGroup.Use(authMiddleware.Authenticate)

	resourceGroup.GET("", resourceHandler.ListResources)
	resourceGroup.POST("", resourceHandler.CreateResource)
	resourceGroup.DELETE("/:id", resourceHandler.DeleteResource)
}
