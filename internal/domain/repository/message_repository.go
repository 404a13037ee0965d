package repository

import (
	"context"
	"time"

	"beyondtheory/internal/domain/entity"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error

	// ListByConversation returns messages ordered by createdAt ascending.
	// A non-zero since restricts to messages strictly newer than it. A
	// non-empty lastID widens the filter to include messages sharing
	// since's timestamp, then drops everything up to and including that
	// id, so tied messages from other senders are not skipped.
	ListByConversation(ctx context.Context, conversationID string, since time.Time, lastID string) ([]*entity.Message, error)

	GetByID(ctx context.Context, conversationID, messageID string) (*entity.Message, error)
	Delete(ctx context.Context, conversationID, messageID string) error

	// CountSince counts messages newer than since that were not authored by
	// excludeUserID. A zero since counts every message.
	CountSince(ctx context.Context, conversationID string, since time.Time, excludeUserID string) (int, error)
}
