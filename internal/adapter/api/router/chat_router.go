package router

import (
	"github.com/labstack/echo/v4"

	"beyondtheory/internal/adapter/api/handler"
)

// SetupChatRouter registers the conversation, message and unread endpoints.
// These routes carry the caller's identity as an explicit parameter instead
// of reading it from an auth session, so the polling UI and the tests hit
// the same surface.
func SetupChatRouter(e *echo.Echo, chatHandler *handler.ChatHandler) {
	e.GET("/conversations", chatHandler.GetConversations)
	e.POST("/conversations", chatHandler.CreateConversation)

	e.GET("/messages", chatHandler.GetMessages)
	e.POST("/messages", chatHandler.CreateMessage)
	e.DELETE("/messages", chatHandler.DeleteMessage)

	e.GET("/unread", chatHandler.GetUnreadCount)
	e.POST("/unread", chatHandler.MarkAsRead)
}
