package repository

import (
	"context"

	"beyondtheory/internal/domain/entity"
)

type ConversationRepository interface {
	// GetOrCreateDirect resolves the direct conversation between the two
	// participants of conv, creating it if absent. Safe under concurrent
	// calls from both parties; the boolean reports whether a new document
	// was created.
	GetOrCreateDirect(ctx context.Context, conv *entity.Conversation) (*entity.Conversation, bool, error)

	// GetOrCreatePublic returns the single community conversation, creating
	// it lazily on first access.
	GetOrCreatePublic(ctx context.Context) (*entity.Conversation, error)

	GetByID(ctx context.Context, id string) (*entity.Conversation, error)
	ListByUserID(ctx context.Context, userID string) ([]*entity.Conversation, error)

	// UpdateLastMessageIfNewer overwrites the denormalized last-message
	// preview only when lm is not older than the stored one. The comparison
	// happens at write time, so preview updates applied out of order still
	// settle on the newest message.
	UpdateLastMessageIfNewer(ctx context.Context, conversationID string, lm *entity.LastMessage) error

	// RecomputeLastMessage rebuilds the preview from the newest message
	// remaining in the conversation, clearing it when none remain.
	RecomputeLastMessage(ctx context.Context, conversationID string) error
}
