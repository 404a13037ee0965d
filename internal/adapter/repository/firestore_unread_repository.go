package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"beyondtheory/internal/domain/entity"
	"beyondtheory/internal/domain/repository"
	"beyondtheory/pkg/errors"
)

type firestoreUnreadRepository struct {
	client *firestore.Client
}

func NewFirestoreUnreadRepository(client *firestore.Client) repository.UnreadRepository {
	return &firestoreUnreadRepository{
		client: client,
	}
}

func (r *firestoreUnreadRepository) Get(ctx context.Context, userID, conversationID string) (*entity.UnreadMarker, error) {
	markerID := entity.UnreadMarkerID(userID, conversationID)

	doc, err := r.client.Collection("unreadMarkers").Doc(markerID).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, errors.Internal("Failed to get unread marker", err)
	}

	var marker entity.UnreadMarker
	if err := doc.DataTo(&marker); err != nil {
		return nil, errors.Internal("Failed to parse unread marker data", err)
	}

	return &marker, nil
}

func (r *firestoreUnreadRepository) Upsert(ctx context.Context, marker *entity.UnreadMarker) error {
	markerID := entity.UnreadMarkerID(marker.UserID, marker.ConversationID)

	_, err := r.client.Collection("unreadMarkers").Doc(markerID).Set(ctx, marker)
	if err != nil {
		return errors.Internal("Failed to upsert unread marker", err)
	}

	return nil
}
