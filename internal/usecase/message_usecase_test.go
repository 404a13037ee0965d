package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beyondtheory/internal/domain/entity"
)

func setupDirectConversation(t *testing.T) (*fakeConversationRepo, *fakeMessageRepo, *MessageUseCase, *entity.Conversation) {
	t.Helper()
	ctx := context.Background()
	messageRepo := newFakeMessageRepo()
	convRepo := newFakeConversationRepo(messageRepo)
	convUC := NewConversationUseCase(convRepo, newTestUsers())
	msgUC := NewMessageUseCase(messageRepo, convRepo)

	conv, err := convUC.GetOrCreate(ctx, GetOrCreateConversationInput{
		CurrentUserID: "u1",
		OtherUserID:   "u2",
	})
	require.NoError(t, err)

	return convRepo, messageRepo, msgUC, conv
}

func TestSendAndListMessagesOrdered(t *testing.T) {
	ctx := context.Background()
	_, _, uc, conv := setupDirectConversation(t)

	for _, text := range []string{"first", "second", "third"} {
		_, err := uc.Send(ctx, SendMessageInput{
			ConversationID: conv.ID,
			UserID:         "u1",
			Text:           text,
		})
		require.NoError(t, err)
	}

	messages, err := uc.List(ctx, conv.ID, time.Time{}, "")
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "first", messages[0].Text)
	assert.Equal(t, "second", messages[1].Text)
	assert.Equal(t, "third", messages[2].Text)
	assert.True(t, messages[0].CreatedAt.Before(messages[1].CreatedAt))
	assert.True(t, messages[1].CreatedAt.Before(messages[2].CreatedAt))
}

func TestListMessagesSince(t *testing.T) {
	ctx := context.Background()
	_, _, uc, conv := setupDirectConversation(t)

	first, err := uc.Send(ctx, SendMessageInput{ConversationID: conv.ID, UserID: "u1", Text: "first"})
	require.NoError(t, err)
	_, err = uc.Send(ctx, SendMessageInput{ConversationID: conv.ID, UserID: "u2", Text: "second"})
	require.NoError(t, err)

	messages, err := uc.List(ctx, conv.ID, first.CreatedAt, "")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "second", messages[0].Text)
}

func TestListMessagesUnknownConversation(t *testing.T) {
	_, _, uc, _ := setupDirectConversation(t)

	messages, err := uc.List(context.Background(), "no-such-conversation", time.Time{}, "")
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestSendMessageEmptyText(t *testing.T) {
	ctx := context.Background()
	_, _, uc, conv := setupDirectConversation(t)

	for _, text := range []string{"", "   ", "<script>alert(1)</script>"} {
		_, err := uc.Send(ctx, SendMessageInput{
			ConversationID: conv.ID,
			UserID:         "u1",
			Text:           text,
		})
		require.Error(t, err)
		assertAppErrorCode(t, err, "BAD_REQUEST")
	}
}

func TestSendMessageSanitizesMarkup(t *testing.T) {
	ctx := context.Background()
	_, _, uc, conv := setupDirectConversation(t)

	message, err := uc.Send(ctx, SendMessageInput{
		ConversationID: conv.ID,
		UserID:         "u1",
		Text:           "<b>hello</b> world",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello world", message.Text)
}

func TestSendMessageNonParticipant(t *testing.T) {
	ctx := context.Background()
	_, _, uc, conv := setupDirectConversation(t)

	_, err := uc.Send(ctx, SendMessageInput{
		ConversationID: conv.ID,
		UserID:         "intruder",
		Text:           "let me in",
	})
	require.Error(t, err)
	assertAppErrorCode(t, err, "FORBIDDEN")
}

func TestSendMessageUpdatesLastMessage(t *testing.T) {
	ctx := context.Background()
	convRepo, _, uc, conv := setupDirectConversation(t)

	message, err := uc.Send(ctx, SendMessageInput{ConversationID: conv.ID, UserID: "u1", Text: "hello"})
	require.NoError(t, err)

	stored, err := convRepo.GetByID(ctx, conv.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.LastMessage)
	assert.Equal(t, "hello", stored.LastMessage.Text)
	assert.Equal(t, "u1", stored.LastMessage.SenderUID)
	assert.Equal(t, message.CreatedAt, stored.LastMessage.Timestamp)
}

func TestLastMessageIgnoresStalePreviewUpdate(t *testing.T) {
	ctx := context.Background()
	convRepo, _, uc, conv := setupDirectConversation(t)

	older, err := uc.Send(ctx, SendMessageInput{ConversationID: conv.ID, UserID: "u1", Text: "older"})
	require.NoError(t, err)
	newer, err := uc.Send(ctx, SendMessageInput{ConversationID: conv.ID, UserID: "u2", Text: "newer"})
	require.NoError(t, err)

	// Replay the older append's preview write landing after the newer one,
	// as happens when two concurrent senders' updates complete out of order.
	err = convRepo.UpdateLastMessageIfNewer(ctx, conv.ID, &entity.LastMessage{
		Text:      older.Text,
		Timestamp: older.CreatedAt,
		SenderUID: older.UserID,
	})
	require.NoError(t, err)

	stored, err := convRepo.GetByID(ctx, conv.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.LastMessage)
	assert.Equal(t, "newer", stored.LastMessage.Text)
	assert.Equal(t, newer.CreatedAt, stored.LastMessage.Timestamp)
}

func TestListMessagesLastIDBreaksTimestampTie(t *testing.T) {
	ctx := context.Background()
	messageRepo := newFakeMessageRepo()
	uc := NewMessageUseCase(messageRepo, newFakeConversationRepo(messageRepo))

	// Two messages sharing a timestamp, as a coarse clock can produce.
	ts := time.Now()
	messageRepo.messages["c1"] = []*entity.Message{
		{ID: "m1", ConversationID: "c1", UserID: "u1", Text: "first", CreatedAt: ts},
		{ID: "m2", ConversationID: "c1", UserID: "u2", Text: "second", CreatedAt: ts},
	}

	// The strict since filter alone would skip the tied message.
	messages, err := uc.List(ctx, "c1", ts, "")
	require.NoError(t, err)
	assert.Empty(t, messages)

	// With lastId the tie is disambiguated and the unseen message surfaces.
	messages, err = uc.List(ctx, "c1", ts, "m1")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "second", messages[0].Text)
}

func TestDeleteMessageNotAuthor(t *testing.T) {
	ctx := context.Background()
	_, _, uc, conv := setupDirectConversation(t)

	message, err := uc.Send(ctx, SendMessageInput{ConversationID: conv.ID, UserID: "u1", Text: "mine"})
	require.NoError(t, err)

	err = uc.Delete(ctx, conv.ID, message.ID, "u2")
	require.Error(t, err)
	assertAppErrorCode(t, err, "FORBIDDEN")

	// Still there.
	messages, err := uc.List(ctx, conv.ID, time.Time{}, "")
	require.NoError(t, err)
	assert.Len(t, messages, 1)
}

func TestDeleteMessageUnknown(t *testing.T) {
	_, _, uc, conv := setupDirectConversation(t)

	err := uc.Delete(context.Background(), conv.ID, "no-such-message", "u1")
	require.Error(t, err)
	assertAppErrorCode(t, err, "NOT_FOUND")
}

func TestDeleteNewestMessageRecomputesLastMessage(t *testing.T) {
	ctx := context.Background()
	convRepo, _, uc, conv := setupDirectConversation(t)

	older, err := uc.Send(ctx, SendMessageInput{ConversationID: conv.ID, UserID: "u1", Text: "older"})
	require.NoError(t, err)
	newer, err := uc.Send(ctx, SendMessageInput{ConversationID: conv.ID, UserID: "u2", Text: "newer"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, conv.ID, newer.ID, "u2"))

	stored, err := convRepo.GetByID(ctx, conv.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.LastMessage)
	assert.Equal(t, "older", stored.LastMessage.Text)
	assert.Equal(t, older.CreatedAt, stored.LastMessage.Timestamp)

	// Removing the only remaining message clears the preview.
	require.NoError(t, uc.Delete(ctx, conv.ID, older.ID, "u1"))

	stored, err = convRepo.GetByID(ctx, conv.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.LastMessage)
}
