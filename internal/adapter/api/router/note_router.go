package router

import (
	"github.com/labstack/echo/v4"

	"beyondtheory/internal/adapter/api/handler"
	"beyondtheory/internal/adapter/api/middleware"
)

func SetupNoteRouter(e *echo.Echo, noteHandler *handler.NoteHandler, authMiddleware *middleware.AuthMiddleware) {
	noteGroup := e.Group("/v1/notes")
	noteGroup.Use(authMiddleware.Authenticate)

	noteGroup.GET("", noteHandler.ListNotes)
	noteGroup.POST("", noteHandler.CreateNote)
	noteGroup.PUT("/:id", noteHandler.UpdateNote)
	noteGroup.DELETE("/:id", noteHandler.DeleteNote)
}
