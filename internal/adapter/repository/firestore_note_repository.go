package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"beyondtheory/internal/domain/entity"
	"beyondtheory/internal/domain/repository"
	"beyondtheory/pkg/errors"
)

type firestoreNoteRepository struct {
	client *firestore.Client
}

func NewFirestoreNoteRepository(client *firestore.Client) repository.NoteRepository {
	return &firestoreNoteRepository{client: client}
}

func (r *firestoreNoteRepository) Create(ctx context.Context, note *entity.Note) error {
	if note.ID == "" {
		note.ID = uuid.New().String()
	}

	now := time.Now()
	note.CreatedAt = now
	note.UpdatedAt = now

	_, err := r.client.Collection("notes").Doc(note.ID).Set(ctx, note)
	if err != nil {
		return errors.Internal("Failed to create note", err)
	}
	return nil
}

func (r *firestoreNoteRepository) GetByID(ctx context.Context, id string) (*entity.Note, error) {
	doc, err := r.client.Collection("notes").Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Note", err)
		}
		return nil, errors.Internal("Failed to get note", err)
	}

	var note entity.Note
	if err := doc.DataTo(&note); err != nil {
		return nil, errors.Internal("Failed to parse note data", err)
	}
	return &note, nil
}

func (r *firestoreNoteRepository) ListByUserID(ctx context.Context, userID string) ([]*entity.Note, error) {
	query := r.client.Collection("notes").Where("userId", "==", userID).OrderBy("updatedAt", firestore.Desc)

	iter := query.Documents(ctx)
	var notes []*entity.Note

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate notes", err)
		}

		var note entity.Note
		if err := doc.DataTo(&note); err != nil {
			continue // Skip malformed documents
		}
		notes = append(notes, &note)
	}

	return notes, nil
}

func (r *firestoreNoteRepository) Update(ctx context.Context, note *entity.Note) error {
	note.UpdatedAt = time.Now()

	_, err := r.client.Collection("notes").Doc(note.ID).Set(ctx, note)
	if err != nil {
		return errors.Internal("Failed to update note", err)
	}
	return nil
}

func (r *firestoreNoteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("notes").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete note", err)
	}
	return nil
}
