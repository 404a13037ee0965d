package usecase

import (
	"context"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"beyondtheory/internal/domain/entity"
	"beyondtheory/internal/domain/repository"
	"beyondtheory/pkg/errors"
)

type NoteUseCase struct {
	noteRepo  repository.NoteRepository
	sanitizer *bluemonday.Policy
}

func NewNoteUseCase(noteRepo repository.NoteRepository) *NoteUseCase {
	return &NoteUseCase{
		noteRepo: noteRepo,
		// Notes keep basic user-generated formatting, scripts stripped.
		sanitizer: bluemonday.UGCPolicy(),
	}
}

type NoteInput struct {
	Title   string
	Content string
}

func (uc *NoteUseCase) Create(ctx context.Context, userID string, input NoteInput) (*entity.Note, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, errors.BadRequest("Title must not be empty", nil)
	}

	note := &entity.Note{
		UserID:  userID,
		Title:   title,
		Content: uc.sanitizer.Sanitize(input.Content),
	}

	if err := uc.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

func (uc *NoteUseCase) ListForUser(ctx context.Context, userID string) ([]*entity.Note, error) {
	return uc.noteRepo.ListByUserID(ctx, userID)
}

func (uc *NoteUseCase) Update(ctx context.Context, userID, noteID string, input NoteInput) (*entity.Note, error) {
	note, err := uc.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return nil, err
	}

	if note.UserID != userID {
		return nil, errors.Forbidden("You can only modify your own notes", nil)
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		note.Title = title
	}
	note.Content = uc.sanitizer.Sanitize(input.Content)

	if err := uc.noteRepo.Update(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

func (uc *NoteUseCase) Delete(ctx context.Context, userID, noteID string) error {
	note, err := uc.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return err
	}

	if note.UserID != userID {
		return errors.Forbidden("You can only delete your own notes", nil)
	}

	return uc.noteRepo.Delete(ctx, noteID)
}
