package usecase

import (
	"context"
	"log"
	"sort"

	"beyondtheory/internal/domain/entity"
	"beyondtheory/internal/domain/repository"
	"beyondtheory/pkg/errors"
)

type ConversationUseCase struct {
	convRepo repository.ConversationRepository
	userRepo repository.UserRepository
}

func NewConversationUseCase(convRepo repository.ConversationRepository, userRepo repository.UserRepository) *ConversationUseCase {
	return &ConversationUseCase{
		convRepo: convRepo,
		userRepo: userRepo,
	}
}

type GetOrCreateConversationInput struct {
	CurrentUserID      string
	OtherUserID        string
	CurrentUserProfile entity.UserProfile
}

// GetOrCreate resolves the direct conversation between the two users,
// creating it if absent. Idempotent in either call order: both parties
// resolve to the same derived conversation ID.
func (uc *ConversationUseCase) GetOrCreate(ctx context.Context, input GetOrCreateConversationInput) (*entity.Conversation, error) {
	if input.CurrentUserID == input.OtherUserID {
		return nil, errors.BadRequest("You cannot start a conversation with yourself", nil)
	}

	other, err := uc.userRepo.GetByID(ctx, input.OtherUserID)
	if err != nil {
		log.Printf("GetOrCreate Error: Other user %s not found: %v", input.OtherUserID, err)
		return nil, errors.NotFound("User", err)
	}

	participants := []string{input.CurrentUserID, input.OtherUserID}
	sort.Strings(participants)

	conv := &entity.Conversation{
		ID:                  entity.DirectConversationID(input.CurrentUserID, input.OtherUserID),
		IsPublic:            false,
		Participants:        participants,
		ParticipantsDetails: []entity.UserProfile{input.CurrentUserProfile, other.Profile()},
	}

	result, created, err := uc.convRepo.GetOrCreateDirect(ctx, conv)
	if err != nil {
		log.Printf("GetOrCreate Error: Failed to get or create conversation for %s/%s: %v", input.CurrentUserID, input.OtherUserID, err)
		return nil, err
	}

	if created {
		log.Printf("Created conversation %s between %s and %s", result.ID, input.CurrentUserID, input.OtherUserID)
	}

	return result, nil
}

// ListForUser returns the user's conversations plus the public one, most
// recently active first. Conversations without messages sort after every
// conversation that has one, newest created first.
func (uc *ConversationUseCase) ListForUser(ctx context.Context, userID string) ([]*entity.Conversation, error) {
	if userID == "" {
		return nil, errors.BadRequest("userId is required", nil)
	}

	conversations, err := uc.convRepo.ListByUserID(ctx, userID)
	if err != nil {
		log.Printf("ListForUser Error: Failed to list conversations for user %s: %v", userID, err)
		return nil, err
	}

	public, err := uc.convRepo.GetOrCreatePublic(ctx)
	if err != nil {
		log.Printf("ListForUser Error: Failed to resolve public conversation: %v", err)
		return nil, err
	}
	conversations = append(conversations, public)

	sort.SliceStable(conversations, func(i, j int) bool {
		a, b := conversations[i], conversations[j]
		switch {
		case a.LastMessage != nil && b.LastMessage != nil:
			return a.LastMessage.Timestamp.After(b.LastMessage.Timestamp)
		case a.LastMessage != nil:
			return true
		case b.LastMessage != nil:
			return false
		default:
			return a.CreatedAt.After(b.CreatedAt)
		}
	})

	return conversations, nil
}
