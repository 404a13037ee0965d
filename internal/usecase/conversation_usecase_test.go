package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beyondtheory/internal/domain/entity"
)

func newTestUsers() *fakeUserRepo {
	return newFakeUserRepo(
		&entity.User{ID: "u1", Email: "u1@example.com", Username: "alice"},
		&entity.User{ID: "u2", Email: "u2@example.com", Username: "bob"},
	)
}

func TestGetOrCreateConversationIdempotent(t *testing.T) {
	ctx := context.Background()
	convRepo := newFakeConversationRepo(newFakeMessageRepo())
	uc := NewConversationUseCase(convRepo, newTestUsers())

	first, err := uc.GetOrCreate(ctx, GetOrCreateConversationInput{
		CurrentUserID:      "u1",
		OtherUserID:        "u2",
		CurrentUserProfile: entity.UserProfile{UID: "u1", Username: "alice"},
	})
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, entity.DirectConversationID("u1", "u2"), first.ID)
	assert.Equal(t, []string{"u1", "u2"}, first.Participants)

	// Same pair, opposite direction, must resolve to the same conversation.
	second, err := uc.GetOrCreate(ctx, GetOrCreateConversationInput{
		CurrentUserID:      "u2",
		OtherUserID:        "u1",
		CurrentUserProfile: entity.UserProfile{UID: "u2", Username: "bob"},
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, convRepo.conversations, 1)
}

func TestGetOrCreateConversationWithSelf(t *testing.T) {
	uc := NewConversationUseCase(newFakeConversationRepo(newFakeMessageRepo()), newTestUsers())

	_, err := uc.GetOrCreate(context.Background(), GetOrCreateConversationInput{
		CurrentUserID: "u1",
		OtherUserID:   "u1",
	})
	require.Error(t, err)
	assertAppErrorCode(t, err, "BAD_REQUEST")
}

func TestGetOrCreateConversationUnknownUser(t *testing.T) {
	uc := NewConversationUseCase(newFakeConversationRepo(newFakeMessageRepo()), newTestUsers())

	_, err := uc.GetOrCreate(context.Background(), GetOrCreateConversationInput{
		CurrentUserID: "u1",
		OtherUserID:   "ghost",
	})
	require.Error(t, err)
	assertAppErrorCode(t, err, "NOT_FOUND")
}

func TestListForUserIncludesPublicAndOrders(t *testing.T) {
	ctx := context.Background()
	messageRepo := newFakeMessageRepo()
	convRepo := newFakeConversationRepo(messageRepo)
	users := newTestUsers()
	convUC := NewConversationUseCase(convRepo, users)
	msgUC := NewMessageUseCase(messageRepo, convRepo)

	direct, err := convUC.GetOrCreate(ctx, GetOrCreateConversationInput{
		CurrentUserID: "u1",
		OtherUserID:   "u2",
	})
	require.NoError(t, err)

	// A message in the direct conversation makes it sort before the
	// message-less public one.
	_, err = msgUC.Send(ctx, SendMessageInput{
		ConversationID: direct.ID,
		UserID:         "u1",
		Text:           "hello",
	})
	require.NoError(t, err)

	conversations, err := convUC.ListForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, conversations, 2)
	assert.Equal(t, direct.ID, conversations[0].ID)
	assert.Equal(t, entity.PublicConversationID, conversations[1].ID)

	// A newer message in the public conversation flips the order.
	_, err = msgUC.Send(ctx, SendMessageInput{
		ConversationID: entity.PublicConversationID,
		UserID:         "u2",
		Text:           "hi everyone",
	})
	require.NoError(t, err)

	conversations, err = convUC.ListForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, conversations, 2)
	assert.Equal(t, entity.PublicConversationID, conversations[0].ID)
}

func TestListForUserMissingUserID(t *testing.T) {
	uc := NewConversationUseCase(newFakeConversationRepo(newFakeMessageRepo()), newTestUsers())

	_, err := uc.ListForUser(context.Background(), "")
	require.Error(t, err)
	assertAppErrorCode(t, err, "BAD_REQUEST")
}
