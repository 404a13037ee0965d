package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"beyondtheory/internal/domain/entity"
	"beyondtheory/internal/domain/repository"
	"beyondtheory/pkg/errors"
)

type MessageUseCase struct {
	messageRepo repository.MessageRepository
	convRepo    repository.ConversationRepository
	sanitizer   *bluemonday.Policy
}

func NewMessageUseCase(messageRepo repository.MessageRepository, convRepo repository.ConversationRepository) *MessageUseCase {
	return &MessageUseCase{
		messageRepo: messageRepo,
		convRepo:    convRepo,
		sanitizer:   bluemonday.StrictPolicy(),
	}
}

type SendMessageInput struct {
	ConversationID string
	UserID         string
	Text           string
	ReplyTo        string
	ResourceLinks  []string
}

// List returns a conversation's messages ordered by createdAt ascending.
// An unknown conversation yields an empty sequence, same as a conversation
// with no messages.
func (uc *MessageUseCase) List(ctx context.Context, conversationID string, since time.Time, lastID string) ([]*entity.Message, error) {
	if conversationID == "" {
		return nil, errors.BadRequest("conversationId is required", nil)
	}

	messages, err := uc.messageRepo.ListByConversation(ctx, conversationID, since, lastID)
	if err != nil {
		log.Printf("List Error: Failed to list messages for conversation %s: %v", conversationID, err)
		return nil, err
	}

	return messages, nil
}

func (uc *MessageUseCase) Send(ctx context.Context, input SendMessageInput) (*entity.Message, error) {
	text := strings.TrimSpace(uc.sanitizer.Sanitize(input.Text))
	if text == "" {
		return nil, errors.BadRequest("Message text must not be empty", nil)
	}

	conv, err := uc.convRepo.GetByID(ctx, input.ConversationID)
	if err != nil {
		log.Printf("Send Error: Conversation %s not found: %v", input.ConversationID, err)
		return nil, err
	}

	if !conv.HasParticipant(input.UserID) {
		log.Printf("Send Error: User %s is not a participant in conversation %s", input.UserID, input.ConversationID)
		return nil, errors.Forbidden("User is not a participant in this conversation", nil)
	}

	message := &entity.Message{
		ConversationID: input.ConversationID,
		UserID:         input.UserID,
		Text:           text,
		ReplyTo:        input.ReplyTo,
		ResourceLinks:  input.ResourceLinks,
	}

	if err := uc.messageRepo.Create(ctx, message); err != nil {
		log.Printf("Send Error: Failed to create message for conversation %s: %v", input.ConversationID, err)
		return nil, err
	}

	// Concurrent appends may apply their preview updates out of order; the
	// repository compares timestamps at write time so the newest one wins.
	lm := &entity.LastMessage{
		Text:      message.Text,
		Timestamp: message.CreatedAt,
		SenderUID: message.UserID,
	}
	if err := uc.convRepo.UpdateLastMessageIfNewer(ctx, input.ConversationID, lm); err != nil {
		log.Printf("Send Error: Failed to update conversation %s with last message: %v", input.ConversationID, err)
		return nil, err
	}

	return message, nil
}

func (uc *MessageUseCase) Delete(ctx context.Context, conversationID, messageID, userID string) error {
	message, err := uc.messageRepo.GetByID(ctx, conversationID, messageID)
	if err != nil {
		log.Printf("Delete Error: Message %s not found in conversation %s: %v", messageID, conversationID, err)
		return err
	}

	if message.UserID != userID {
		log.Printf("Delete Error: User %s is not the author of message %s", userID, messageID)
		return errors.Forbidden("Only the author can delete a message", nil)
	}

	if err := uc.messageRepo.Delete(ctx, conversationID, messageID); err != nil {
		log.Printf("Delete Error: Failed to delete message %s: %v", messageID, err)
		return err
	}

	// The preview is derived state; rebuild it from the newest remaining
	// message rather than trusting what was there before.
	if err := uc.convRepo.RecomputeLastMessage(ctx, conversationID); err != nil {
		log.Printf("Delete Error: Failed to recompute last message for conversation %s: %v", conversationID, err)
		return err
	}

	return nil
}
