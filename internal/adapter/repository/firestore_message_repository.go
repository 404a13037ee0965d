package repository

import (
	"context"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"beyondtheory/internal/domain/entity"
	"beyondtheory/internal/domain/repository"
	"beyondtheory/pkg/errors"
)

type firestoreMessageRepository struct {
	client *firestore.Client
}

func NewFirestoreMessageRepository(client *firestore.Client) repository.MessageRepository {
	return &firestoreMessageRepository{
		client: client,
	}
}

func (r *firestoreMessageRepository) messages(conversationID string) *firestore.CollectionRef {
	return r.client.Collection("conversations").Doc(conversationID).Collection("messages")
}

func (r *firestoreMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}

	// Timestamp is assigned here, not by the caller, so fetch-since queries
	// stay well-ordered.
	message.CreatedAt = time.Now()

	_, err := r.messages(message.ConversationID).Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to create message", err)
	}

	return nil
}

func (r *firestoreMessageRepository) ListByConversation(ctx context.Context, conversationID string, since time.Time, lastID string) ([]*entity.Message, error) {
	query := r.messages(conversationID).OrderBy("createdAt", firestore.Asc)
	if !since.IsZero() {
		// With lastID supplied, include messages sharing since's timestamp
		// so the id drop below can disambiguate ties instead of the strict
		// filter silently skipping them.
		if lastID != "" {
			query = query.Where("createdAt", ">=", since)
		} else {
			query = query.Where("createdAt", ">", since)
		}
	}

	iter := query.Documents(ctx)
	var messages []*entity.Message

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Printf("Firestore error while iterating messages for conversation %s: %v", conversationID, err)
			return nil, errors.Internal("Failed to iterate messages", err)
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			log.Printf("Error parsing message data for conversation %s: %v", conversationID, err)
			return nil, errors.Internal("Failed to parse message data", err)
		}

		messages = append(messages, &message)
	}

	// Timestamp collisions around the since boundary: drop everything up to
	// and including lastID when the caller supplies it.
	if lastID != "" {
		for i, m := range messages {
			if m.ID == lastID {
				messages = messages[i+1:]
				break
			}
		}
	}

	return messages, nil
}

func (r *firestoreMessageRepository) GetByID(ctx context.Context, conversationID, messageID string) (*entity.Message, error) {
	doc, err := r.messages(conversationID).Doc(messageID).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Message", err)
		}
		return nil, errors.Internal("Failed to get message", err)
	}

	var message entity.Message
	if err := doc.DataTo(&message); err != nil {
		return nil, errors.Internal("Failed to parse message data", err)
	}
	return &message, nil
}

func (r *firestoreMessageRepository) Delete(ctx context.Context, conversationID, messageID string) error {
	_, err := r.messages(conversationID).Doc(messageID).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete message", err)
	}
	return nil
}

func (r *firestoreMessageRepository) CountSince(ctx context.Context, conversationID string, since time.Time, excludeUserID string) (int, error) {
	query := r.messages(conversationID).Query
	if !since.IsZero() {
		query = query.Where("createdAt", ">", since)
	}

	// Sender filtering happens client-side; Firestore cannot combine a
	// range filter with an inequality on another field.
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count messages", err)
	}

	count := 0
	for _, doc := range docs {
		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			continue // Skip malformed documents
		}
		if message.UserID != excludeUserID {
			count++
		}
	}

	return count, nil
}
