package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"beyondtheory/internal/usecase"
	"beyondtheory/pkg/response"
)

type NoteHandler struct {
	noteUseCase *usecase.NoteUseCase
}

func NewNoteHandler(noteUseCase *usecase.NoteUseCase) *NoteHandler {
	return &NoteHandler{
		noteUseCase: noteUseCase,
	}
}

type noteRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

func (h *NoteHandler) ListNotes(c echo.Context) error {
	userID := c.Get("uid").(string)

	notes, err := h.noteUseCase.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, notes)
}

func (h *NoteHandler) CreateNote(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	note, err := h.noteUseCase.Create(c.Request().Context(), userID, usecase.NoteInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, note)
}

func (h *NoteHandler) UpdateNote(c echo.Context) error {
	userID := c.Get("uid").(string)
	noteID := c.Param("id")

	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	note, err := h.noteUseCase.Update(c.Request().Context(), userID, noteID, usecase.NoteInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, note)
}

func (h *NoteHandler) DeleteNote(c echo.Context) error {
	userID := c.Get("uid").(string)
	noteID := c.Param("id")

	if err := h.noteUseCase.Delete(c.Request().Context(), userID, noteID); err != nil {
		return response.Error(c, err)
	}

	return c.NoContent(http.StatusOK)
}
