package repository

import (
	"context"

	"beyondtheory/internal/domain/entity"
)

type UnreadRepository interface {
	// Get returns the marker for the (user, conversation) pair, or nil when
	// the user has never marked the conversation as read.
	Get(ctx context.Context, userID, conversationID string) (*entity.UnreadMarker, error)
	Upsert(ctx context.Context, marker *entity.UnreadMarker) error
}
