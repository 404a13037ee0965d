package router

import (
	"github.com/labstack/echo/v4"

	"beyondtheory/internal/adapter/api/handler"
	"beyondtheory/internal/adapter/api/middleware"
)

type Handlers struct {
	Auth      *handler.AuthHandler
	User      *handler.UserHandler
	Chat      *handler.ChatHandler
	Todo      *handler.TodoHandler
	Goal      *handler.GoalHandler
	Note      *handler.NoteHandler
	Resource  *handler.ResourceHandler
	Assistant *handler.AssistantHandler
}

func Setup(e *echo.Echo, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	SetupHealthRouter(e)
	SetupAuthRouter(e, h.Auth)
	SetupUserRouter(e, h.User, authMiddleware)
	SetupChatRouter(e, h.Chat)
	SetupTodoRouter(e, h.Todo, authMiddleware)
	SetupGoalRouter(e, h.Goal, authMiddleware)
	SetupNoteRouter(e, h.Note, authMiddleware)
	SetupResourceRouter(e, h.Resource, authMiddleware)
	SetupAssistantRouter(e, h.Assistant, authMiddleware)
}
