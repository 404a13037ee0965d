package repository

import (
	"context"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"beyondtheory/internal/domain/entity"
	"beyondtheory/internal/domain/repository"
	"beyondtheory/pkg/errors"
)

type firestoreConversationRepository struct {
	client *firestore.Client
}

func NewFirestoreConversationRepository(client *firestore.Client) repository.ConversationRepository {
	return &firestoreConversationRepository{
		client: client,
	}
}

// GetOrCreateDirect runs a transactional read-then-write against the derived
// document ID, so concurrent calls from both parties settle on one document.
func (r *firestoreConversationRepository) GetOrCreateDirect(ctx context.Context, conv *entity.Conversation) (*entity.Conversation, bool, error) {
	docRef := r.client.Collection("conversations").Doc(conv.ID)

	var result entity.Conversation
	created := false

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err == nil {
			return doc.DataTo(&result)
		}
		if !IsNotFound(err) {
			return err
		}

		now := time.Now()
		conv.CreatedAt = now
		conv.UpdatedAt = now
		created = true
		result = *conv
		return tx.Set(docRef, conv)
	})
	if err != nil {
		return nil, false, errors.Internal("Failed to get or create conversation", err)
	}

	return &result, created, nil
}

func (r *firestoreConversationRepository) GetOrCreatePublic(ctx context.Context) (*entity.Conversation, error) {
	docRef := r.client.Collection("conversations").Doc(entity.PublicConversationID)

	var result entity.Conversation

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err == nil {
			return doc.DataTo(&result)
		}
		if !IsNotFound(err) {
			return err
		}

		now := time.Now()
		result = entity.Conversation{
			ID:           entity.PublicConversationID,
			IsPublic:     true,
			Participants: []string{entity.PublicParticipant},
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		return tx.Set(docRef, &result)
	})
	if err != nil {
		return nil, errors.Internal("Failed to get or create public conversation", err)
	}

	return &result, nil
}

func (r *firestoreConversationRepository) GetByID(ctx context.Context, id string) (*entity.Conversation, error) {
	doc, err := r.client.Collection("conversations").Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Conversation", err)
		}
		return nil, errors.Internal("Failed to get conversation", err)
	}

	var conv entity.Conversation
	if err := doc.DataTo(&conv); err != nil {
		return nil, errors.Internal("Failed to parse conversation data", err)
	}

	return &conv, nil
}

func (r *firestoreConversationRepository) ListByUserID(ctx context.Context, userID string) ([]*entity.Conversation, error) {
	query := r.client.Collection("conversations").Where("participants", "array-contains", userID)

	iter := query.Documents(ctx)
	var conversations []*entity.Conversation

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Printf("Firestore error while fetching conversations for user %s: %v", userID, err)
			return nil, errors.Internal("Failed to fetch conversations", err)
		}

		var conv entity.Conversation
		if err := doc.DataTo(&conv); err != nil {
			log.Printf("Error parsing conversation data for user %s: %v", userID, err)
			continue // Skip malformed documents
		}
		conversations = append(conversations, &conv)
	}

	return conversations, nil
}

// UpdateLastMessageIfNewer applies the preview inside a transaction,
// re-reading the stored value so a late-arriving update for an older message
// never wins over a newer one already written.
func (r *firestoreConversationRepository) UpdateLastMessageIfNewer(ctx context.Context, conversationID string, lm *entity.LastMessage) error {
	docRef := r.client.Collection("conversations").Doc(conversationID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			return err
		}

		var conv entity.Conversation
		if err := doc.DataTo(&conv); err != nil {
			return err
		}

		if conv.LastMessage != nil && lm.Timestamp.Before(conv.LastMessage.Timestamp) {
			return nil
		}

		return tx.Update(docRef, []firestore.Update{
			{Path: "lastMessage", Value: lm},
			{Path: "updatedAt", Value: time.Now()},
		})
	})
	if err != nil {
		if IsNotFound(err) {
			return errors.NotFound("Conversation", err)
		}
		return errors.Internal("Failed to update last message", err)
	}

	return nil
}

// RecomputeLastMessage queries the newest remaining message and writes the
// preview in the same transaction, so a concurrent append cannot be shadowed
// by the recompute.
func (r *firestoreConversationRepository) RecomputeLastMessage(ctx context.Context, conversationID string) error {
	docRef := r.client.Collection("conversations").Doc(conversationID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(docRef); err != nil {
			return err
		}

		query := docRef.Collection("messages").OrderBy("createdAt", firestore.Desc).Limit(1)
		docs, err := tx.Documents(query).GetAll()
		if err != nil {
			return err
		}

		var lm *entity.LastMessage
		if len(docs) > 0 {
			var message entity.Message
			if err := docs[0].DataTo(&message); err != nil {
				return err
			}
			lm = &entity.LastMessage{
				Text:      message.Text,
				Timestamp: message.CreatedAt,
				SenderUID: message.UserID,
			}
		}

		return tx.Update(docRef, []firestore.Update{
			{Path: "lastMessage", Value: lm},
			{Path: "updatedAt", Value: time.Now()},
		})
	})
	if err != nil {
		if IsNotFound(err) {
			return errors.NotFound("Conversation", err)
		}
		return errors.Internal("Failed to recompute last message", err)
	}

	return nil
}
