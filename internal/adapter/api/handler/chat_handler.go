package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"beyondtheory/internal/domain/entity"
	"beyondtheory/internal/usecase"
	"beyondtheory/pkg/errors"
	"beyondtheory/pkg/response"
)

// ChatHandler serves the conversation, message and unread endpoints. The
// caller's identity arrives as an explicit parameter on every request, which
// keeps these routes testable without a live auth backend.
type ChatHandler struct {
	conversationUseCase *usecase.ConversationUseCase
	messageUseCase      *usecase.MessageUseCase
	unreadUseCase       *usecase.UnreadUseCase
}

func NewChatHandler(
	conversationUseCase *usecase.ConversationUseCase,
	messageUseCase *usecase.MessageUseCase,
	unreadUseCase *usecase.UnreadUseCase,
) *ChatHandler {
	return &ChatHandler{
		conversationUseCase: conversationUseCase,
		messageUseCase:      messageUseCase,
		unreadUseCase:       unreadUseCase,
	}
}

type userProfileRequest struct {
	UID      string `json:"uid" validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL"`
}

type createConversationRequest struct {
	CurrentUserID      string             `json:"currentUserId" validate:"required"`
	OtherUserID        string             `json:"otherUserId" validate:"required"`
	CurrentUserProfile userProfileRequest `json:"currentUserProfile" validate:"required"`
}

type createMessageRequest struct {
	ConversationID string   `json:"conversationId" validate:"required"`
	Text           string   `json:"text" validate:"required"`
	UserID         string   `json:"userId" validate:"required"`
	ReplyTo        string   `json:"replyTo"`
	ResourceLinks  []string `json:"resourceLinks"`
}

type markReadRequest struct {
	UserID         string `json:"userId" validate:"required"`
	ConversationID string `json:"conversationId" validate:"required"`
}

// GetConversations returns the user's conversations plus the public one,
// most recently active first.
func (h *ChatHandler) GetConversations(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return response.Error(c, errors.BadRequest("userId is required", nil))
	}

	conversations, err := h.conversationUseCase.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	if conversations == nil {
		conversations = []*entity.Conversation{}
	}
	return response.Success(c, conversations)
}

// CreateConversation resolves or creates the direct conversation between the
// caller and the other user.
func (h *ChatHandler) CreateConversation(c echo.Context) error {
	var req createConversationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	conversation, err := h.conversationUseCase.GetOrCreate(c.Request().Context(), usecase.GetOrCreateConversationInput{
		CurrentUserID: req.CurrentUserID,
		OtherUserID:   req.OtherUserID,
		CurrentUserProfile: entity.UserProfile{
			UID:      req.CurrentUserProfile.UID,
			Username: req.CurrentUserProfile.Username,
			Email:    req.CurrentUserProfile.Email,
			PhotoURL: req.CurrentUserProfile.PhotoURL,
		},
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, conversation)
}

// GetMessages returns a conversation's messages, optionally restricted to
// those strictly newer than since (RFC3339), with lastId as a tie-breaker
// for the polling clients.
func (h *ChatHandler) GetMessages(c echo.Context) error {
	conversationID := c.QueryParam("conversationId")
	if conversationID == "" {
		return response.Error(c, errors.BadRequest("conversationId is required", nil))
	}

	var since time.Time
	if sinceStr := c.QueryParam("since"); sinceStr != "" {
		parsed, err := time.Parse(time.RFC3339, sinceStr)
		if err != nil {
			return response.Error(c, errors.BadRequest("since must be an RFC3339 timestamp", err))
		}
		since = parsed
	}

	messages, err := h.messageUseCase.List(c.Request().Context(), conversationID, since, c.QueryParam("lastId"))
	if err != nil {
		return response.Error(c, err)
	}

	if messages == nil {
		messages = []*entity.Message{}
	}
	return response.Success(c, messages)
}

// CreateMessage appends a message; the server assigns id and timestamp.
func (h *ChatHandler) CreateMessage(c echo.Context) error {
	var req createMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.messageUseCase.Send(c.Request().Context(), usecase.SendMessageInput{
		ConversationID: req.ConversationID,
		UserID:         req.UserID,
		Text:           req.Text,
		ReplyTo:        req.ReplyTo,
		ResourceLinks:  req.ResourceLinks,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

// DeleteMessage removes a message. Only the author may delete; anyone else
// gets a 403.
func (h *ChatHandler) DeleteMessage(c echo.Context) error {
	conversationID := c.QueryParam("conversationId")
	messageID := c.QueryParam("messageId")
	userID := c.QueryParam("userId")
	if conversationID == "" || messageID == "" || userID == "" {
		return response.Error(c, errors.BadRequest("conversationId, messageId and userId are required", nil))
	}

	if err := h.messageUseCase.Delete(c.Request().Context(), conversationID, messageID, userID); err != nil {
		return response.Error(c, err)
	}

	return c.String(http.StatusOK, "message deleted")
}

// GetUnreadCount returns the total number of unread messages across all of
// the user's conversations.
func (h *ChatHandler) GetUnreadCount(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return response.Error(c, errors.BadRequest("userId is required", nil))
	}

	count, err := h.unreadUseCase.Count(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]int{"count": count})
}

// MarkAsRead moves the caller's read marker for a conversation to now.
func (h *ChatHandler) MarkAsRead(c echo.Context) error {
	var req markReadRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.unreadUseCase.MarkRead(c.Request().Context(), req.UserID, req.ConversationID); err != nil {
		return response.Error(c, err)
	}

	return c.String(http.StatusOK, "conversation marked as read")
}
