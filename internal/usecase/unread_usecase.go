package usecase

import (
	"context"
	"log"
	"time"

	"beyondtheory/internal/domain/entity"
	"beyondtheory/internal/domain/repository"
	"beyondtheory/pkg/errors"
)

type UnreadUseCase struct {
	convRepo    repository.ConversationRepository
	messageRepo repository.MessageRepository
	unreadRepo  repository.UnreadRepository
}

func NewUnreadUseCase(convRepo repository.ConversationRepository, messageRepo repository.MessageRepository, unreadRepo repository.UnreadRepository) *UnreadUseCase {
	return &UnreadUseCase{
		convRepo:    convRepo,
		messageRepo: messageRepo,
		unreadRepo:  unreadRepo,
	}
}

// Count sums, across every conversation the user participates in (the public
// one included), the messages from other users newer than the user's read
// marker. A missing marker counts the whole conversation.
func (uc *UnreadUseCase) Count(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, errors.BadRequest("userId is required", nil)
	}

	conversations, err := uc.convRepo.ListByUserID(ctx, userID)
	if err != nil {
		log.Printf("Count Error: Failed to list conversations for user %s: %v", userID, err)
		return 0, err
	}

	public, err := uc.convRepo.GetOrCreatePublic(ctx)
	if err != nil {
		log.Printf("Count Error: Failed to resolve public conversation: %v", err)
		return 0, err
	}
	conversations = append(conversations, public)

	total := 0
	for _, conv := range conversations {
		marker, err := uc.unreadRepo.Get(ctx, userID, conv.ID)
		if err != nil {
			log.Printf("Count Error: Failed to get unread marker for %s/%s: %v", userID, conv.ID, err)
			return 0, err
		}

		var since time.Time
		if marker != nil {
			since = marker.LastReadAt
		}

		n, err := uc.messageRepo.CountSince(ctx, conv.ID, since, userID)
		if err != nil {
			log.Printf("Count Error: Failed to count messages for conversation %s: %v", conv.ID, err)
			return 0, err
		}
		total += n
	}

	return total, nil
}

// MarkRead moves the user's read marker for the conversation to now.
// Idempotent: repeated calls with no new messages keep the count at zero.
func (uc *UnreadUseCase) MarkRead(ctx context.Context, userID, conversationID string) error {
	if _, err := uc.convRepo.GetByID(ctx, conversationID); err != nil {
		log.Printf("MarkRead Error: Conversation %s not found: %v", conversationID, err)
		return err
	}

	marker := &entity.UnreadMarker{
		UserID:         userID,
		ConversationID: conversationID,
		LastReadAt:     time.Now(),
	}

	if err := uc.unreadRepo.Upsert(ctx, marker); err != nil {
		log.Printf("MarkRead Error: Failed to upsert unread marker for %s/%s: %v", userID, conversationID, err)
		return err
	}

	return nil
}
